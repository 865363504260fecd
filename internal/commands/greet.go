package commands

import "fmt"

// GreetCommand is the registry name of the greet command.
const GreetCommand = "greet"

// Greet formats the canonical greeting for a name. The input is used as-is,
// with no trimming or validation.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Rust!", name)
}

// RegisterGreet adds the greet command to a registry.
func RegisterGreet(r *Registry) error {
	return r.Register(GreetCommand, func(arg string) (string, error) {
		return Greet(arg), nil
	})
}
