package hole

import "strings"

// args is the set of parameters that were supplied.
type args map[string]bool

// field is a named optional parameter.
type field struct {
	name  string
	value *float64
}

func newArgs(fields ...field) args {
	a := make(args, len(fields))
	for _, f := range fields {
		if f.value != nil {
			a[f.name] = true
		}
	}
	return a
}

// rule checks a set of supplied parameters.
type rule func(a args) error

// exclusive allows parameters from at most one of groups.
func exclusive(groups ...[]string) rule {
	return func(a args) error {
		var present []string
		used := 0
		for _, g := range groups {
			hit := false
			for _, name := range g {
				if a[name] {
					present = append(present, name)
					hit = true
				}
			}
			if hit {
				used++
			}
		}
		if used > 1 {
			return &ConfigError{Kind: ErrExclusive, Fields: present}
		}
		return nil
	}
}

// required demands every parameter in always and at least one
// parameter of each of groups.
func required(always []string, groups ...[]string) rule {
	return func(a args) error {
		var missing []string
		for _, name := range always {
			if !a[name] {
				missing = append(missing, name)
			}
		}
		for _, g := range groups {
			found := false
			for _, name := range g {
				found = found || a[name]
			}
			if !found {
				missing = append(missing, joinOr(g))
			}
		}
		if len(missing) > 0 {
			return &ConfigError{Kind: ErrRequired, Fields: missing}
		}
		return nil
	}
}

// validate returns the error of the first rule a breaks.
func validate(a args, rules ...rule) error {
	for _, r := range rules {
		if err := r(a); err != nil {
			return err
		}
	}
	return nil
}

func joinOr(names []string) string { return strings.Join(names, " or ") }
