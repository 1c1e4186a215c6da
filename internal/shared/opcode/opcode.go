// Package opcode is the registry of operation codes guarding each protected
// action. Codes are seven digits: family (10X) followed by a four digit action.
package opcode

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	AssignmentCreate = "1010001"
	AssignmentUpdate = "1010002"
	AssignmentList   = "1010003"
	AssignmentDelete = "1010004"
	AssignmentView   = "1010005"

	AuthorizationCreate = "1020001"
	AuthorizationUpdate = "1020002"
	AuthorizationList   = "1020003"
	AuthorizationDelete = "1020004"
	AuthorizationView   = "1020005"

	TransactionCreate = "1030001"
	TransactionUpdate = "1030002"
	TransactionList   = "1030003"
	TransactionDelete = "1030004"
	TransactionView   = "1030005"

	UserCreate             = "1040001"
	UserUpdate             = "1040002"
	UserList               = "1040003"
	UserDelete             = "1040004"
	UserView               = "1040005"
	UserTransactionsGrants = "1040006"

	RoleCreate = "1050001"
	RoleUpdate = "1050002"
	RoleList   = "1050003"
	RoleDelete = "1050004"
	RoleView   = "1050005"
)

var codePattern = regexp.MustCompile(`^[0-9]{7}$`)

// Valid reports whether code has the seven digit shape.
func Valid(code string) bool {
	return codePattern.MatchString(code)
}

// Definition describes one registry entry as it is seeded into the
// transactions table.
type Definition struct {
	Code        string
	Name        string
	Description string
}

// Actions groups the five CRUD codes of an entity family.
type Actions struct {
	Create string
	Update string
	List   string
	Delete string
	View   string
}

var (
	Assignment    = Actions{AssignmentCreate, AssignmentUpdate, AssignmentList, AssignmentDelete, AssignmentView}
	Authorization = Actions{AuthorizationCreate, AuthorizationUpdate, AuthorizationList, AuthorizationDelete, AuthorizationView}
	Transaction   = Actions{TransactionCreate, TransactionUpdate, TransactionList, TransactionDelete, TransactionView}
	User          = Actions{UserCreate, UserUpdate, UserList, UserDelete, UserView}
	Role          = Actions{RoleCreate, RoleUpdate, RoleList, RoleDelete, RoleView}
)

type family struct {
	label   string
	actions Actions
}

var families = []family{
	{"Assignment", Assignment},
	{"Authorization", Authorization},
	{"Transaction", Transaction},
	{"User", User},
	{"Role", Role},
}

// Catalog returns every registered code in ascending order.
func Catalog() []Definition {
	defs := make([]Definition, 0, 26)
	for _, f := range families {
		noun := strings.ToLower(f.label)
		defs = append(defs,
			Definition{f.actions.Create, f.label + " - Create", fmt.Sprintf("Create a new %s", noun)},
			Definition{f.actions.Update, f.label + " - Update", fmt.Sprintf("Update an existing %s", noun)},
			Definition{f.actions.List, f.label + " - List", fmt.Sprintf("List and search for %ss", noun)},
			Definition{f.actions.Delete, f.label + " - Delete", fmt.Sprintf("Delete an existing %s", noun)},
			Definition{f.actions.View, f.label + " - View", fmt.Sprintf("Get an existing %s", noun)},
		)
		if f.label == "User" {
			defs = append(defs, Definition{
				Code:        UserTransactionsGrants,
				Name:        "User - Transactions granted",
				Description: "List the transactions granted to a user",
			})
		}
	}
	return defs
}

// Codes returns the bare codes of Catalog.
func Codes() []string {
	defs := Catalog()
	codes := make([]string, 0, len(defs))
	for _, d := range defs {
		codes = append(codes, d.Code)
	}
	return codes
}
