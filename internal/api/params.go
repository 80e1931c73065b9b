package api

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"powerprices/internal/domain"
)

// queryParser reads typed query parameters and collects every problem it finds.
type queryParser struct {
	values url.Values
	errs   []string
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) fail(format string, args ...any) {
	p.errs = append(p.errs, fmt.Sprintf(format, args...))
}

func (p *queryParser) raw(name string) string {
	return strings.TrimSpace(p.values.Get(name))
}

func (p *queryParser) requiredString(name string) string {
	v := p.raw(name)
	if v == "" {
		p.fail("%s is required", name)
	}
	return v
}

func (p *queryParser) requiredDate(name string) time.Time {
	v := p.raw(name)
	if v == "" {
		p.fail("%s is required", name)
		return time.Time{}
	}
	return p.date(name, v)
}

func (p *queryParser) optionalDate(name string, def time.Time) time.Time {
	v := p.raw(name)
	if v == "" {
		return def
	}
	return p.date(name, v)
}

func (p *queryParser) date(name, v string) time.Time {
	d, err := domain.ParseDate(v)
	if err != nil {
		p.fail("%s must be a date formatted as YYYY-MM-DD, got %q", name, v)
	}
	return d
}

// enumParam parses an enumeration parameter. Empty values yield def, or an error when required.
func enumParam[E ~string](p *queryParser, name string, parse func(string) (E, error), def E, required bool) E {
	v := p.raw(name)
	if v == "" {
		if required {
			p.fail("%s is required", name)
		}
		return def
	}
	e, err := parse(v)
	if err != nil {
		p.errs = append(p.errs, err.Error())
		return def
	}
	return e
}

// err returns nil or a message listing every invalid parameter.
func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return errors.New(strings.Join(p.errs, "; "))
}
