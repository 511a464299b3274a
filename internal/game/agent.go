package game

// Agent chooses a move for a player on their turn. Agents receive full read
// access to the game through its query methods; the scripted agents in this
// repo cheat by inspecting their own hands directly. ChooseMove must return
// a legal action for the player whose turn it is.
type Agent interface {
	Name() string
	ChooseMove(g *Game, player int) Action
}
