package user

import (
	"strings"

	"golang.org/x/text/cases"
)

type Role string

const (
	RoleManager         Role = "manager"
	RolePetOwner        Role = "pet owner"
	RoleServiceProvider Role = "service provider"
)

var roles = []Role{RoleManager, RolePetOwner, RoleServiceProvider}

// ParseRole resolves a role name case-insensitively ("Pet Owner", "MANAGER").
func ParseRole(value string) (Role, error) {
	folded := cases.Fold().String(strings.Join(strings.Fields(value), " "))
	for _, role := range roles {
		if folded == string(role) {
			return role, nil
		}
	}
	return "", ErrInvalidRole
}

type User struct {
	ID       int64  `gorm:"column:userid;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Email    string `gorm:"column:email;not null;uniqueIndex"`
	Password string `gorm:"column:password;not null"`
	Gender   string `gorm:"column:gender"`
	Role     Role   `gorm:"column:role;not null"`
}

func (User) TableName() string { return "user" }

// Manager, PetOwner and ServiceProvider share their key with the User row.

type Manager struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
}

func (Manager) TableName() string { return "manager" }

type PetOwner struct {
	ID      int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	Phone   *string `gorm:"column:phone;uniqueIndex"`
	City    string  `gorm:"column:city"`
	Address string  `gorm:"column:address"`
}

func (PetOwner) TableName() string { return "petowner" }

type ServiceProvider struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	BusinessName string  `gorm:"column:bussiness_name"`
	Logo         []byte  `gorm:"column:logo"`
	Phone        *string `gorm:"column:phone;uniqueIndex"`
	Description  string  `gorm:"column:description"`
	Address      string  `gorm:"column:address"`
	Website      string  `gorm:"column:website"`
}

func (ServiceProvider) TableName() string { return "serviceprovider" }

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Gender   string
	Role     string
}

type UpdateUserInput struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Gender   string
	Role     string
}

type UpdatePetOwnerInput struct {
	ID      int64
	Phone   *string
	City    string
	Address string
}

type UpdateServiceProviderInput struct {
	ID           int64
	BusinessName string
	Logo         []byte
	Phone        *string
	Description  string
	Address      string
	Website      string
}
