package command

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
)

type DivideCommand struct{}

func (c *DivideCommand) Name() string        { return "divide" }
func (c *DivideCommand) Description() string { return "Divide two numbers" }
func (c *DivideCommand) Aliases() []string   { return nil }

func (c *DivideCommand) Params() []Param {
	return []Param{
		{Name: "num1", Type: ParamFloat, Required: true},
		{Name: "num2", Type: ParamFloat, Required: true},
	}
}

func (c *DivideCommand) Run(ctx *MessageContext) error {
	a := ctx.Args.Float("num1")
	b := ctx.Args.Float("num2")

	if b == 0 {
		return ctx.Reply("Error: Cannot divide by zero!")
	}

	return ctx.Reply(fmt.Sprintf("%s ÷ %s = %.2f", formatFloat(a), formatFloat(b), a/b))
}

// HandleError answers binding failures with usage hints instead of the
// default silent drop.
func (c *DivideCommand) HandleError(ctx *MessageContext, err error) {
	var missing *MissingRequiredArgumentError
	var bad *BadArgumentError

	var reply string
	switch {
	case errors.As(err, &missing):
		reply = fmt.Sprintf("Please provide two numbers: %sdivide <num1> <num2>", ctx.Prefix)
	case errors.As(err, &bad):
		reply = "Please provide valid numbers!"
	default:
		return
	}

	if err := ctx.Reply(reply); err != nil {
		log.Println("[ERR] Failed to send divide usage reply:", err)
	}
}

// formatFloat renders whole floats with a trailing .0 so that "10" reads
// back as "10.0" in replies.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func init() {
	Register(&DivideCommand{})
}
