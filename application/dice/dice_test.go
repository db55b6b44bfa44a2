package dice_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/muhammadheryan/compose-demos/application/dice"
)

func TestDiceApp_Roll(t *testing.T) {
	app := dice.NewDiceAppWithSource(rand.New(rand.NewPCG(1, 2)))
	seen := map[int]bool{}
	for i := 0; i < 600; i++ {
		got := app.Roll(context.Background())
		if got.Value < 1 || got.Value > dice.Faces {
			t.Fatalf("Roll() = %d, out of range", got.Value)
		}
		if got.Face != fmt.Sprintf("dice_%d", got.Value) {
			t.Fatalf("Face = %q for value %d", got.Face, got.Value)
		}
		seen[got.Value] = true
	}
	if len(seen) != dice.Faces {
		t.Fatalf("saw faces %v, want all %d", seen, dice.Faces)
	}
}
