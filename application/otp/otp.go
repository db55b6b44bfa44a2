// Package otp is the simulated one-time code backend: it generates codes,
// hands them to a Sender and imitates the verification round trip.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
)

// Backend is what the auth flow needs from a code delivery service.
type Backend interface {
	// Issue generates a new code and delivers it to phone.
	Issue(ctx context.Context, sessionID, phone string) (string, error)
	// Wait blocks for the verification round trip or until ctx is done.
	Wait(ctx context.Context) error
}

type Generator interface {
	Generate() (string, error)
}

type Sender interface {
	Send(ctx context.Context, msg model.OTPMessage) error
}

// RandomGenerator draws codes uniformly from 100000..999999.
type RandomGenerator struct{}

func NewRandomGenerator() RandomGenerator {
	return RandomGenerator{}
}

var (
	codeFloor = big.NewInt(100000)
	codeSpan  = big.NewInt(900000)
)

func (RandomGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", fmt.Errorf("draw code: %w", err)
	}
	return n.Add(n, codeFloor).String(), nil
}

type simulated struct {
	generator Generator
	sender    Sender
	delay     time.Duration
	now       func() time.Time
}

// NewSimulatedBackend returns a Backend with a fixed verification delay.
func NewSimulatedBackend(generator Generator, sender Sender, delay time.Duration) Backend {
	return &simulated{generator: generator, sender: sender, delay: delay, now: time.Now}
}

func (s *simulated) Issue(ctx context.Context, sessionID, phone string) (string, error) {
	code, err := s.generator.Generate()
	if err != nil {
		return "", err
	}
	if len(code) != constant.OTPLength {
		return "", fmt.Errorf("generator returned %d digits", len(code))
	}
	msg := model.OTPMessage{
		SessionID:   sessionID,
		PhoneNumber: phone,
		Code:        code,
		IssuedAt:    s.now(),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return "", fmt.Errorf("send code: %w", err)
	}
	return code, nil
}

func (s *simulated) Wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
