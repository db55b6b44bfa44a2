package greeting

import (
	"context"
	"strings"

	"github.com/muhammadheryan/compose-demos/model"
)

const (
	DefaultName   = "Fransisna"
	DefaultSender = "Wildan"
	wish          = "Wishing you all the happiness and success!"
)

type GreetingApp interface {
	Card(ctx context.Context, name, from string) *model.GreetingCard
}

type greetingAppImpl struct{}

func NewGreetingApp() GreetingApp {
	return &greetingAppImpl{}
}

// Card builds the birthday card; blank name or from fall back to the defaults.
func (s *greetingAppImpl) Card(_ context.Context, name, from string) *model.GreetingCard {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	from = strings.TrimSpace(from)
	if from == "" {
		from = DefaultSender
	}
	return &model.GreetingCard{
		Message: "🎉 Happy Birthday, " + name + "! 🎂",
		Wish:    wish,
		From:    "💌 From " + from,
	}
}
