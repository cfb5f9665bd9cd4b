package component

// GameOverRequest is emitted once when the session enters the terminal
// state. The game-over system applies it and notifies the outer game loop.
type GameOverRequest struct{}

var GameOverRequestComponent = NewComponent[GameOverRequest]()
