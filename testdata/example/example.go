// Package example demonstrates reference generation for pydown tests.
package example

// Answer is reported as an unrecognized symbol kind.
const Answer = 42

// Greeter produces greeting messages.
//
// Attributes
// ----------
// Name : string
//     Included in every greeting.
// Mood : Mood
//     How the greeting is delivered.
type Greeter struct {
	Name string
	Mood Mood
}

// Mood is the tone of a greeting.
//
// Values
// ------
// Cheerful : Ends with an exclamation mark.
// Grumpy   : Ends with a sigh.
type Mood int

const (
	Cheerful Mood = iota
	Grumpy
)

// NewGreeter constructs a Greeter.
//
// Parameters
// ----------
// name : string
//     Who is greeted.
func NewGreeter(name string) *Greeter {
	return &Greeter{Name: name}
}

// Greet returns a friendly message.
func (g *Greeter) Greet() string {
	return "hello " + g.Name
}
