package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// ContactLink is one labeled entry in the contact block (Scholar, GitHub, ...).
// Links are rendered in authored order.
type ContactLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Profile is the static record describing the site owner.
// It is authored once in profile.yaml and never mutated at runtime.
type Profile struct {
	Name        string        `yaml:"name"`
	Affiliation string        `yaml:"affiliation"`
	Email       string        `yaml:"email"`
	Bio         string        `yaml:"bio"` // Markdown
	Interests   []string      `yaml:"interests"`
	Links       []ContactLink `yaml:"links"`

	// Photo and CV are paths relative to the assets directory.
	// Both are optional: pages degrade gracefully when the file is absent.
	Photo string `yaml:"photo,omitempty"`
	CV    string `yaml:"cv,omitempty"`
}

// ValidateEmail checks that s is a single bare, well-formed address.
// The same string is used for display and for the clipboard copy action.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email cannot be empty")
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return fmt.Errorf("invalid email address %q: %w", s, err)
	}

	// Reject "Name <addr>" forms; the site displays the raw address.
	if addr.Address != s {
		return fmt.Errorf("email must be a bare address, got %q", s)
	}

	return nil
}

// Validate checks the invariants the renderer relies on.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	if err := ValidateEmail(p.Email); err != nil {
		return err
	}

	for i, link := range p.Links {
		if strings.TrimSpace(link.Label) == "" {
			return fmt.Errorf("contact link %d is missing a label", i+1)
		}
		if strings.TrimSpace(link.URL) == "" {
			return fmt.Errorf("contact link %q is missing a url", link.Label)
		}
	}

	return nil
}
