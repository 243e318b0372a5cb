// Package refdata serves the reference lists behind the submission form:
// product lines, plants, customers and the directory of users per role.
package refdata

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"pricingdesk.app/server/internal/model"
)

//go:embed default.yaml
var defaultData []byte

type User struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

type Data struct {
	ProductLines []string                `yaml:"product_lines"`
	Plants       []string                `yaml:"plants"`
	Customers    []string                `yaml:"customers"`
	Users        map[model.Role][]User `yaml:"users"`
}

// Load reads reference data from path, or the built-in defaults when path is empty.
func Load(path string) (*Data, error) {
	raw := defaultData
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading reference data: %w", err)
		}
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing reference data: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	for role, users := range d.Users {
		for i := range users {
			users[i].Email = strings.ToLower(strings.TrimSpace(users[i].Email))
		}
		d.Users[role] = users
	}
	return &d, nil
}

func (d *Data) validate() error {
	if len(d.ProductLines) == 0 {
		return fmt.Errorf("reference data: product_lines is empty")
	}
	if len(d.Plants) == 0 {
		return fmt.Errorf("reference data: plants is empty")
	}
	for role, users := range d.Users {
		if !role.IsValid() {
			return fmt.Errorf("reference data: unknown role %q", role)
		}
		for _, u := range users {
			if u.Email == "" {
				return fmt.Errorf("reference data: %s user %q has no email", role, u.Name)
			}
		}
	}
	return nil
}

// UsersByRole matches role case-insensitively; unknown roles yield an empty list.
func (d *Data) UsersByRole(role string) []User {
	users := d.Users[model.Role(strings.ToUpper(strings.TrimSpace(role)))]
	if users == nil {
		return []User{}
	}
	return users
}

// CustomerList falls back to placeholder customers when none are configured.
func (d *Data) CustomerList() []string {
	if len(d.Customers) == 0 {
		return []string{"Customer A", "Customer B", "Customer C"}
	}
	return d.Customers
}

func (d *Data) HasProductLine(name string) bool {
	return slices.Contains(d.ProductLines, name)
}

// NameFor looks email up across every role and returns the directory name.
func (d *Data) NameFor(email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, users := range d.Users {
		for _, u := range users {
			if u.Email == email {
				return u.Name, true
			}
		}
	}
	return "", false
}
