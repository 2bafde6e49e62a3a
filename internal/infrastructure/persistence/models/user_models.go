package models

import (
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/users"
)

// UserModel is the GORM database model for accounts
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Username        string    `gorm:"not null;uniqueIndex;type:varchar(30)"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
	PasswordHash    string    `gorm:"not null;type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Username:        m.Username,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.DateTimeCreated = u.DateTimeCreated
}

// UserInfoModel is the GORM database model for profiles
type UserInfoModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	UserID      string `gorm:"not null;uniqueIndex;type:uuid"`
	FirstName   string `gorm:"type:varchar(30)"`
	LastName    string `gorm:"type:varchar(30)"`
	Institution string `gorm:"type:varchar(100)"`
	Address     string `gorm:"type:varchar(100)"`
	City        string `gorm:"type:varchar(100)"`
	State       string `gorm:"type:varchar(100)"`
	PostalCode  string `gorm:"type:varchar(20)"`
	Country     string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(30)"`
}

// TableName specifies the table name for GORM
func (UserInfoModel) TableName() string {
	return "user_infos"
}

// ToDomain converts GORM model to domain entity
func (m *UserInfoModel) ToDomain() *users.UserInfo {
	return &users.UserInfo{
		ID:     m.ID,
		UserID: m.UserID,
		ProfileParameters: users.ProfileParameters{
			FirstName:   m.FirstName,
			LastName:    m.LastName,
			Institution: m.Institution,
			Address:     m.Address,
			City:        m.City,
			State:       m.State,
			PostalCode:  m.PostalCode,
			Country:     m.Country,
			Phone:       m.Phone,
		},
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserInfoModel) FromDomain(i *users.UserInfo) {
	m.ID = i.ID
	m.UserID = i.UserID
	m.FirstName = i.FirstName
	m.LastName = i.LastName
	m.Institution = i.Institution
	m.Address = i.Address
	m.City = i.City
	m.State = i.State
	m.PostalCode = i.PostalCode
	m.Country = i.Country
	m.Phone = i.Phone
}
