package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// demoTags marshals a User using its yaml tags, then decodes it back.
func demoTags(w io.Writer) error {
	user := buildUser("someone@example.com", "someusername123").
		With(WithEmail("another@example.com"))

	out, err := yaml.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	fmt.Fprintf(w, "%s", indent(out))

	var decoded User
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		return fmt.Errorf("unmarshal user: %w", err)
	}
	fmt.Fprintf(w, "  decoded equals original: %v\n", decoded == user)
	return nil
}

// indent prefixes every line of b with two spaces.
func indent(b []byte) string {
	return "  " + strings.ReplaceAll(strings.TrimSuffix(string(b), "\n"), "\n", "\n  ") + "\n"
}
