package command

import "strconv"

// MissingRequiredArgumentError reports a required parameter that received no
// token. Param names the first missing parameter in declaration order.
type MissingRequiredArgumentError struct {
	Param string
}

func (e *MissingRequiredArgumentError) Error() string {
	return "missing required argument: " + e.Param
}

// BadArgumentError reports a token that could not be coerced to its
// parameter's declared type.
type BadArgumentError struct {
	Param string
	Value string
}

func (e *BadArgumentError) Error() string {
	return "bad argument for " + e.Param + ": " + strconv.Quote(e.Value)
}

// bindArgs coerces message tokens to the declared parameters. Binding is
// all-or-nothing: on the first failure the command handler never runs.
// Tokens beyond the declared parameters are ignored.
func bindArgs(params []Param, tokens []string) (Args, error) {
	args := make(Args, len(params))

	for i, p := range params {
		if i >= len(tokens) {
			if p.Required {
				return nil, &MissingRequiredArgumentError{Param: p.Name}
			}
			continue
		}

		tok := tokens[i]
		switch p.Type {
		case ParamInt:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &BadArgumentError{Param: p.Name, Value: tok}
			}
			args[p.Name] = n
		case ParamFloat:
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &BadArgumentError{Param: p.Name, Value: tok}
			}
			args[p.Name] = f
		default:
			args[p.Name] = tok
		}
	}

	return args, nil
}
