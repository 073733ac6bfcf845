package cli

import (
	"context"
	"fmt"
	"go-frankfurter/frankfurter"
)

// currenciesCommand lists the supported currencies
type currenciesCommand struct {
	*env
}

func (c *currenciesCommand) Name() string {
	return "currencies"
}

func (c *currenciesCommand) Synopsis() string {
	return "List the supported currencies and their full names"
}

func (c *currenciesCommand) Run(ctx context.Context, args []string, out *Output) error {
	var m modifiers
	fs := c.flagSet(c.Name(), "[flags]")
	m.register(fs)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return err
	}
	if err := m.validate(); err != nil {
		return err
	}
	if len(positional) > 0 {
		return usageErrorf("unexpected argument %q", positional[0])
	}

	response, err := c.service.Currencies(ctx, frankfurter.CurrenciesRequest{})
	if err != nil {
		return err
	}

	switch {
	case m.json:
		return writeJSON(out, response)
	case m.raw:
		for _, code := range response.Codes() {
			if _, err := fmt.Fprintf(out, "%s\t%s\n", code, response[code]); err != nil {
				return err
			}
		}
		return nil
	}

	t := newTable("Code", "Full name")
	for _, code := range response.Codes() {
		t.add(
			cell{text: code.String(), color: Green},
			cell{text: response[code]},
		)
	}
	return t.render(out)
}
