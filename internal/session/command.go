package session

// Command is one element of the host's edit/navigation/activation
// stream. Commands are applied strictly in arrival order.
type Command interface {
	isCommand()
}

// AppendText appends typed text to the end of the query.
type AppendText struct {
	Text string
}

// Backspace removes the last codepoint of the query.
type Backspace struct{}

// DeleteWord truncates the query to just after its last space, or to
// empty when it has none.
type DeleteWord struct{}

// Clear empties the query.
type Clear struct{}

// MoveUp moves the selection up, wrapping to the bottom.
type MoveUp struct{}

// MoveDown moves the selection down, wrapping to the top.
type MoveDown struct{}

// Activate asks for the selected item's value.
type Activate struct{}

// Quit ends the session without activating anything.
type Quit struct{}

func (AppendText) isCommand() {}
func (Backspace) isCommand()  {}
func (DeleteWord) isCommand() {}
func (Clear) isCommand()      {}
func (MoveUp) isCommand()     {}
func (MoveDown) isCommand()   {}
func (Activate) isCommand()   {}
func (Quit) isCommand()       {}
