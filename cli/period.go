package cli

import (
	"context"
	"fmt"
	"go-frankfurter/domain"
	"go-frankfurter/frankfurter"
)

// periodCommand prints the rates of every working day of a period
type periodCommand struct {
	*env
}

func (c *periodCommand) Name() string {
	return "period"
}

func (c *periodCommand) Synopsis() string {
	return "Show the exchange rates of every working day of a period"
}

func (c *periodCommand) Run(ctx context.Context, args []string, out *Output) error {
	request, m, err := c.parse(args)
	if err != nil {
		return err
	}

	response, err := c.service.Period(ctx, request)
	if err != nil {
		return err
	}

	switch {
	case m.json:
		return writeJSON(out, response)
	case m.raw:
		for _, date := range response.Dates() {
			if _, err := fmt.Fprintln(out, date); err != nil {
				return err
			}
			rates := response.Rates[date]
			for _, currency := range rates.Currencies() {
				if _, err := fmt.Fprintf(out, "\t%s\t%s\n", currency, rates[currency]); err != nil {
					return err
				}
			}
		}
		return nil
	}

	t := newTable("Date", "Currency", "Value")
	for _, date := range response.Dates() {
		rates := response.Rates[date]
		for i, currency := range rates.Currencies() {
			// the date only heads the first row of its rates
			d := cell{}
			if i == 0 {
				d = cell{text: date.String(), color: Blue}
			}
			t.add(
				d,
				cell{text: currency.String(), color: Green},
				cell{text: rates[currency].String(), color: Cyan},
			)
		}
	}
	return t.render(out)
}

// parse reads "BASE START [END]" and the flags.
func (c *periodCommand) parse(args []string) (frankfurter.PeriodRequest, modifiers, error) {
	var (
		m       modifiers
		amount  string
		targets string
	)
	fs := c.flagSet(c.Name(), "BASE START [END] [flags]")
	fs.StringVar(&targets, "t", "", "target currencies to convert TO, e.g. USD,AUD (default all)")
	fs.StringVar(&targets, "targets", "", "target currencies to convert TO, e.g. USD,AUD (default all)")
	fs.StringVar(&amount, "a", "", "amount of the base currency to convert (default 1)")
	fs.StringVar(&amount, "amount", "", "amount of the base currency to convert (default 1)")
	m.register(fs)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return frankfurter.PeriodRequest{}, m, err
	}
	if err := m.validate(); err != nil {
		return frankfurter.PeriodRequest{}, m, err
	}
	switch {
	case len(positional) < 2:
		return frankfurter.PeriodRequest{}, m, usageErrorf("the BASE and START arguments are required")
	case len(positional) > 3:
		return frankfurter.PeriodRequest{}, m, usageErrorf("unexpected argument %q", positional[3])
	}

	base, err := domain.ParseCurrency(positional[0])
	if err != nil {
		return frankfurter.PeriodRequest{}, m, &UsageError{Err: err}
	}
	start, err := domain.ParseDate(positional[1], c.clock)
	if err != nil {
		return frankfurter.PeriodRequest{}, m, &UsageError{Err: err}
	}
	request := frankfurter.NewPeriodRequest(start).WithBase(base)

	if len(positional) > 2 {
		end, err := domain.ParseDate(positional[2], c.clock)
		if err != nil {
			return request, m, &UsageError{Err: err}
		}
		request = request.WithEndDate(end)
	}
	if targets != "" {
		currencies, err := domain.ParseCurrencies(targets)
		if err != nil {
			return request, m, &UsageError{Err: err}
		}
		request = request.WithTargets(currencies...)
	}
	if amount != "" {
		value, err := domain.ParseCurrencyValue(amount)
		if err != nil {
			return request, m, &UsageError{Err: err}
		}
		request = request.WithAmount(value)
	}
	return request, m, nil
}
