package game

import (
	"errors"
	"fmt"

	"github.com/jsredmond/grue/internal/parser"
	"github.com/jsredmond/grue/internal/world"
)

// RenderError turns a structured parse failure into the player-facing
// message. The two-candidate ambiguity question names both objects; with
// three or more the question stays open. That wording split is part of the
// presentation contract, not resolver logic.
func RenderError(err error, view *WorldView) string {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return "Something went wrong."
	}
	switch perr.Kind {
	case parser.KindEmptyInput:
		return "I beg your pardon?"
	case parser.KindMalformedInput:
		return "I don't understand that."
	case parser.KindUnknownWord:
		msg := fmt.Sprintf("I don't know the word %q.", perr.Word)
		if perr.Suggestion != "" {
			msg += fmt.Sprintf(" (Did you mean %q?)", perr.Suggestion)
		}
		return msg
	case parser.KindNoSyntaxMatch:
		if perr.Verb == "" {
			return "There was no verb in that sentence!"
		}
		return "I didn't understand that sentence."
	case parser.KindObjectNotVisible:
		return fmt.Sprintf("You can't see any %s here!", perr.Word)
	case parser.KindAmbiguous:
		if len(perr.Candidates) == 2 {
			first := objectName(view, perr.Candidates[0])
			second := objectName(view, perr.Candidates[1])
			return fmt.Sprintf("Which %s do you mean, the %s or the %s?", perr.Word, first, second)
		}
		return fmt.Sprintf("Which %s do you mean?", perr.Word)
	case parser.KindNotHeld:
		return "You don't have that!"
	case parser.KindDarkRoom:
		return "It's too dark to see!"
	case parser.KindNothingHere:
		return fmt.Sprintf("There's nothing here you can %s.", perr.Verb)
	}
	return "I don't understand that."
}

func objectName(view *WorldView, id world.ObjectID) string {
	if obj, ok := view.Object(id); ok {
		return obj.Name
	}
	return string(id)
}
