package dice

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/muhammadheryan/compose-demos/model"
)

const Faces = 6

type DiceApp interface {
	Roll(ctx context.Context) *model.DiceResponse
}

type diceAppImpl struct {
	intN func(n int) int
}

func NewDiceApp() DiceApp {
	return &diceAppImpl{intN: rand.IntN}
}

// NewDiceAppWithSource rolls with r instead of the global source.
func NewDiceAppWithSource(r *rand.Rand) DiceApp {
	return &diceAppImpl{intN: r.IntN}
}

func (s *diceAppImpl) Roll(_ context.Context) *model.DiceResponse {
	v := s.intN(Faces) + 1
	return &model.DiceResponse{
		Value: v,
		Face:  fmt.Sprintf("dice_%d", v),
	}
}
