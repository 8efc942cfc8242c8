package game

import (
	"fmt"
	"strings"

	"github.com/jsredmond/grue/internal/parser"
	"github.com/jsredmond/grue/internal/world"
)

// Result is the outcome of executing one parsed command: the events to
// append to the log and the text to show the player. Action handlers own
// all player-facing phrasing; the parser never does.
type Result struct {
	Events []Event
	Text   string
}

// Perform dispatches a parsed command to its action handler. Unknown action
// ids are a programming error (the syntax table and the handler set must
// agree), so they surface as a Go error rather than player text.
func Perform(cmd parser.Command, w *world.World, s *State) (Result, error) {
	v := &WorldView{World: w, State: s}
	switch cmd.Action {
	case "take":
		return doTake(cmd, v), nil
	case "drop":
		return doDrop(cmd, v), nil
	case "put-in":
		return doPutIn(cmd, v), nil
	case "put-on":
		return doPutOn(cmd, v), nil
	case "open":
		return doOpen(cmd, v), nil
	case "close":
		return doClose(cmd, v), nil
	case "look":
		return Result{Text: DescribeRoom(v)}, nil
	case "examine":
		return doExamine(cmd, v), nil
	case "read":
		return doRead(cmd, v), nil
	case "go":
		return doGo(cmd, v), nil
	case "inventory":
		return doInventory(v), nil
	case "wait":
		return Result{Events: []Event{&TurnPassedEvent{}}, Text: "Time passes."}, nil
	case "light":
		return doLight(cmd, v, true), nil
	case "extinguish":
		return doLight(cmd, v, false), nil
	case "attack":
		return doAttack(cmd, v), nil
	case "move":
		return doMove(cmd, v), nil
	case "eat":
		return doEat(cmd, v), nil
	case "drink":
		return doDrink(cmd, v), nil
	case "score":
		return Result{Text: fmt.Sprintf("Your score is %d, in %d moves.", s.Score, s.Moves)}, nil
	}
	return Result{}, fmt.Errorf("no handler for action %q", cmd.Action)
}

// doTake handles single and ALL-expanded takes. Bulk results are reported
// one object per line, prefixed by the object name.
func doTake(cmd parser.Command, v *WorldView) Result {
	var res Result
	var lines []string
	for _, id := range cmd.Direct {
		obj, _ := v.Object(id)
		var line string
		switch {
		case v.State.Holding(id):
			line = "You already have that."
		case !obj.Flags.Has(world.FlagTakeable) || obj.Flags.Has(world.FlagScenery):
			line = "You can't take that."
		default:
			res.Events = append(res.Events, &ObjectTakenEvent{Object: id})
			line = "Taken."
		}
		if cmd.All {
			line = obj.Name + ": " + line
		}
		lines = append(lines, line)
	}
	res.Text = strings.Join(lines, "\n")
	return res
}

func doDrop(cmd parser.Command, v *WorldView) Result {
	var res Result
	var lines []string
	for _, id := range cmd.Direct {
		obj, _ := v.Object(id)
		line := "Dropped."
		res.Events = append(res.Events, &ObjectDroppedEvent{Object: id, Room: v.State.Location})
		if cmd.All {
			line = obj.Name + ": " + line
		}
		lines = append(lines, line)
	}
	res.Text = strings.Join(lines, "\n")
	return res
}

func doPutIn(cmd parser.Command, v *WorldView) Result {
	target, _ := v.Object(cmd.Indirect)
	if !target.Flags.Has(world.FlagContainer) {
		return Result{Text: fmt.Sprintf("You can't put things in the %s.", target.Name)}
	}
	if target.Flags.Has(world.FlagOpenable) && !target.Flags.Has(world.FlagOpen) {
		return Result{Text: fmt.Sprintf("The %s is closed.", target.Name)}
	}
	var res Result
	var lines []string
	for _, id := range cmd.Direct {
		obj, _ := v.Object(id)
		if id == cmd.Indirect {
			lines = append(lines, "You can't put something inside itself.")
			continue
		}
		res.Events = append(res.Events, &ObjectPutEvent{Object: id, Container: cmd.Indirect})
		line := "Done."
		if target.Flags.Has(world.FlagTrophy) && obj.Points > 0 && !v.State.Deposited[id] {
			res.Events = append(res.Events, &TreasureDepositedEvent{Object: id, Points: obj.Points})
		}
		if cmd.All {
			line = obj.Name + ": " + line
		}
		lines = append(lines, line)
	}
	res.Text = strings.Join(lines, "\n")
	return res
}

func doPutOn(cmd parser.Command, v *WorldView) Result {
	target, _ := v.Object(cmd.Indirect)
	if !target.Flags.Has(world.FlagSurface) {
		return Result{Text: fmt.Sprintf("You can't put things on the %s.", target.Name)}
	}
	var res Result
	var lines []string
	for _, id := range cmd.Direct {
		obj, _ := v.Object(id)
		res.Events = append(res.Events, &ObjectPutEvent{Object: id, Container: cmd.Indirect})
		line := "Done."
		if cmd.All {
			line = obj.Name + ": " + line
		}
		lines = append(lines, line)
	}
	res.Text = strings.Join(lines, "\n")
	return res
}

func doOpen(cmd parser.Command, v *WorldView) Result {
	id := cmd.Direct[0]
	obj, _ := v.Object(id)
	if !obj.Flags.Has(world.FlagOpenable) {
		return Result{Text: fmt.Sprintf("You can't open the %s.", obj.Name)}
	}
	if obj.Flags.Has(world.FlagOpen) {
		return Result{Text: "It's already open."}
	}
	res := Result{Events: []Event{&ObjectOpenedEvent{Object: id}}}
	contents := contentsOf(v, id)
	switch len(contents) {
	case 0:
		res.Text = "Opened."
	default:
		names := make([]string, len(contents))
		for i, c := range contents {
			inner, _ := v.Object(c)
			names[i] = withArticle(inner.Name)
		}
		res.Text = fmt.Sprintf("Opening the %s reveals %s.", obj.Name, joinNames(names))
	}
	return res
}

func doClose(cmd parser.Command, v *WorldView) Result {
	id := cmd.Direct[0]
	obj, _ := v.Object(id)
	if !obj.Flags.Has(world.FlagOpenable) {
		return Result{Text: fmt.Sprintf("You can't close the %s.", obj.Name)}
	}
	if !obj.Flags.Has(world.FlagOpen) {
		return Result{Text: "It's already closed."}
	}
	return Result{Events: []Event{&ObjectClosedEvent{Object: id}}, Text: "Closed."}
}

func doExamine(cmd parser.Command, v *WorldView) Result {
	obj, _ := v.Object(cmd.Direct[0])
	if obj.Description != "" {
		return Result{Text: obj.Description}
	}
	return Result{Text: fmt.Sprintf("There's nothing special about the %s.", obj.Name)}
}

func doRead(cmd parser.Command, v *WorldView) Result {
	obj, _ := v.Object(cmd.Direct[0])
	if !obj.Flags.Has(world.FlagReadable) || obj.Text == "" {
		return Result{Text: fmt.Sprintf("How does one read a %s?", obj.Name)}
	}
	return Result{Text: obj.Text}
}

func doGo(cmd parser.Command, v *WorldView) Result {
	room, ok := v.Room()
	if !ok {
		return Result{Text: "You can't go that way."}
	}
	dest, ok := room.Exits[cmd.Direction]
	if !ok {
		return Result{Text: "You can't go that way."}
	}
	res := Result{Events: []Event{&PlayerMovedEvent{To: dest}}}
	// Describe the destination as it will look after the move.
	next := &WorldView{World: v.World, State: peekState(v.State, res.Events)}
	res.Text = DescribeRoom(next)
	return res
}

func doInventory(v *WorldView) Result {
	inv := v.State.Inventory
	if len(inv) == 0 {
		return Result{Text: "You are empty-handed."}
	}
	lines := []string{"You are carrying:"}
	for _, id := range inv {
		obj, _ := v.Object(id)
		lines = append(lines, "  "+withArticle(obj.Name))
	}
	return Result{Text: strings.Join(lines, "\n")}
}

func doLight(cmd parser.Command, v *WorldView, on bool) Result {
	id := cmd.Direct[0]
	obj, _ := v.Object(id)
	if !obj.Flags.Has(world.FlagLight) {
		if on {
			return Result{Text: fmt.Sprintf("You can't light the %s.", obj.Name)}
		}
		return Result{Text: fmt.Sprintf("You can't turn off the %s.", obj.Name)}
	}
	if obj.Flags.Has(world.FlagLit) == on {
		if on {
			return Result{Text: "It's already on."}
		}
		return Result{Text: "It's already off."}
	}
	res := Result{Events: []Event{&LightSwitchedEvent{Object: id, On: on}}}
	if on {
		res.Text = fmt.Sprintf("The %s is now on.", obj.Name)
		// Lighting a lamp in a dark room shows the room.
		if !v.IsLit() {
			next := &WorldView{World: v.World, State: peekState(v.State, res.Events)}
			res.Text += "\n\n" + DescribeRoom(next)
		}
	} else {
		res.Text = fmt.Sprintf("The %s is now off.", obj.Name)
		next := &WorldView{World: v.World, State: peekState(v.State, res.Events)}
		if !next.IsLit() {
			res.Text += "\nIt is now pitch black."
		}
	}
	return res
}

func doAttack(cmd parser.Command, v *WorldView) Result {
	target, _ := v.Object(cmd.Direct[0])
	weapon, _ := v.Object(cmd.Indirect)
	if !weapon.Flags.Has(world.FlagWeapon) {
		return Result{Text: fmt.Sprintf("Attacking the %s with a %s is suicidal.", target.Name, weapon.Name)}
	}
	return Result{
		Events: []Event{&TurnPassedEvent{}},
		Text:   fmt.Sprintf("Attacking the %s with the %s has no effect.", target.Name, weapon.Name),
	}
}

func doMove(cmd parser.Command, v *WorldView) Result {
	obj, _ := v.Object(cmd.Direct[0])
	if obj.Flags.Has(world.FlagScenery) {
		return Result{Text: fmt.Sprintf("You can't move the %s.", obj.Name)}
	}
	return Result{
		Events: []Event{&TurnPassedEvent{}},
		Text:   fmt.Sprintf("Moving the %s reveals nothing.", obj.Name),
	}
}

func doEat(cmd parser.Command, v *WorldView) Result {
	id := cmd.Direct[0]
	obj, _ := v.Object(id)
	if !obj.Flags.Has(world.FlagEdible) {
		return Result{Text: fmt.Sprintf("I don't think the %s would agree with you.", obj.Name)}
	}
	return Result{
		Events: []Event{&ObjectRemovedEvent{Object: id}},
		Text:   "Thank you very much. It really hit the spot.",
	}
}

func doDrink(cmd parser.Command, v *WorldView) Result {
	id := cmd.Direct[0]
	obj, _ := v.Object(id)
	if !obj.Flags.Has(world.FlagDrinkable) {
		return Result{Text: fmt.Sprintf("You can't drink the %s.", obj.Name)}
	}
	return Result{
		Events: []Event{&ObjectRemovedEvent{Object: id}},
		Text:   "Thank you very much. That really hit the spot.",
	}
}

// DescribeRoom renders the current room: name, long description, and the
// visible loose objects. In darkness it renders the classic warning instead.
func DescribeRoom(v *WorldView) string {
	if !v.IsLit() {
		return "It is pitch black. You are likely to be eaten by a grue."
	}
	room, ok := v.Room()
	if !ok {
		return "You are nowhere."
	}
	lines := []string{room.Name, room.Description}
	for _, obj := range v.World.Objects {
		if v.Location(obj.ID).Room != room.ID {
			continue
		}
		eff, _ := v.Object(obj.ID)
		if eff.Flags.Has(world.FlagScenery) {
			continue
		}
		lines = append(lines, fmt.Sprintf("There is %s here.", withArticle(eff.Name)))
		if contents := visibleContents(v, obj.ID); len(contents) > 0 {
			names := make([]string, len(contents))
			for i, c := range contents {
				inner, _ := v.Object(c)
				names[i] = withArticle(inner.Name)
			}
			lines = append(lines, fmt.Sprintf("The %s contains %s.", eff.Name, joinNames(names)))
		}
	}
	return strings.Join(lines, "\n")
}

// contentsOf lists the objects located inside the given object.
func contentsOf(v *WorldView, id world.ObjectID) []world.ObjectID {
	var out []world.ObjectID
	for _, obj := range v.World.Objects {
		if v.Location(obj.ID).Object == id {
			out = append(out, obj.ID)
		}
	}
	return out
}

// visibleContents lists contents only when the holder shows them: surfaces
// always, containers when open.
func visibleContents(v *WorldView, id world.ObjectID) []world.ObjectID {
	obj, ok := v.Object(id)
	if !ok {
		return nil
	}
	visible := obj.Flags.Has(world.FlagSurface) ||
		(obj.Flags.Has(world.FlagContainer) && obj.Flags.Has(world.FlagOpen))
	if !visible {
		return nil
	}
	return contentsOf(v, id)
}

// peekState clones the state and applies events to it, for rendering the
// world as it will be after this turn without mutating the live state.
func peekState(s *State, events []Event) *State {
	clone := NewState()
	clone.Started = s.Started
	clone.Location = s.Location
	clone.Inventory = append([]world.ObjectID(nil), s.Inventory...)
	clone.Moves = s.Moves
	clone.Score = s.Score
	for id, loc := range s.ObjectLocations {
		clone.ObjectLocations[id] = loc
	}
	for id, flags := range s.FlagOverrides {
		inner := make(map[world.Flag]bool, len(flags))
		for f, on := range flags {
			inner[f] = on
		}
		clone.FlagOverrides[id] = inner
	}
	for id := range s.Deposited {
		clone.Deposited[id] = true
	}
	for _, evt := range events {
		_ = evt.Apply(clone)
	}
	return clone
}

func withArticle(name string) string {
	if name == "" {
		return "something"
	}
	switch name[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + name
	}
	return "a " + name
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
