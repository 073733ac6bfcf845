package cli

import (
	"context"
	"fmt"
	"go-frankfurter/domain"
	"go-frankfurter/frankfurter"
)

// convertCommand converts an amount using the rates of a single date
type convertCommand struct {
	*env
}

func (c *convertCommand) Name() string {
	return "convert"
}

func (c *convertCommand) Synopsis() string {
	return "Convert between currencies using the latest or a past date's exchange rates"
}

func (c *convertCommand) Run(ctx context.Context, args []string, out *Output) error {
	request, m, err := c.parse(args)
	if err != nil {
		return err
	}

	response, err := c.service.Convert(ctx, request)
	if err != nil {
		return err
	}

	switch {
	case m.json:
		return writeJSON(out, response)
	case m.raw:
		for _, currency := range response.Rates.Currencies() {
			if _, err := fmt.Fprintf(out, "%s\t%s\n", currency, response.Rates[currency]); err != nil {
				return err
			}
		}
		return nil
	}

	t := newTable("Currency", "Value")
	for _, currency := range response.Rates.Currencies() {
		t.add(
			cell{text: currency.String(), color: Green, right: true},
			cell{text: response.Rates[currency].String(), color: Cyan},
		)
	}
	return t.render(out)
}

// parse reads "[BASE] [TARGETS]" and the flags. The base is always sent, EUR by default.
func (c *convertCommand) parse(args []string) (frankfurter.ConvertRequest, modifiers, error) {
	var (
		m      modifiers
		amount string
		date   string
	)
	fs := c.flagSet(c.Name(), "[BASE] [TARGETS] [flags]")
	fs.StringVar(&amount, "a", "", "amount of the base currency to convert (default 1)")
	fs.StringVar(&amount, "amount", "", "amount of the base currency to convert (default 1)")
	fs.StringVar(&date, "d", "", "date of the exchange rates, yyyy-mm-dd (default latest)")
	fs.StringVar(&date, "date", "", "date of the exchange rates, yyyy-mm-dd (default latest)")
	m.register(fs)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return frankfurter.ConvertRequest{}, m, err
	}
	if err := m.validate(); err != nil {
		return frankfurter.ConvertRequest{}, m, err
	}
	if len(positional) > 2 {
		return frankfurter.ConvertRequest{}, m, usageErrorf("unexpected argument %q", positional[2])
	}

	request := frankfurter.ConvertRequest{}.WithBase(domain.DefaultCurrency)
	if len(positional) > 0 {
		base, err := domain.ParseCurrency(positional[0])
		if err != nil {
			return request, m, &UsageError{Err: err}
		}
		request = request.WithBase(base)
	}
	if len(positional) > 1 {
		targets, err := domain.ParseCurrencies(positional[1])
		if err != nil {
			return request, m, &UsageError{Err: err}
		}
		request = request.WithTargets(targets...)
	}
	if amount != "" {
		value, err := domain.ParseCurrencyValue(amount)
		if err != nil {
			return request, m, &UsageError{Err: err}
		}
		request = request.WithAmount(value)
	}
	if date != "" {
		d, err := domain.ParseDate(date, c.clock)
		if err != nil {
			return request, m, &UsageError{Err: err}
		}
		request = request.WithDate(d)
	}
	return request, m, nil
}
