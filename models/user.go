package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the authenticated caller, decoded from the bearer token.
type User struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty" example:"Joel Alexander"`
	Email string             `json:"email,omitempty" bson:"email,omitempty" example:"joel@example.com"`
}

func (u *User) GetID() *primitive.ObjectID {
	if u == nil {
		return nil
	}
	if u.ID == primitive.NilObjectID {
		return nil
	}
	return &u.ID
}
