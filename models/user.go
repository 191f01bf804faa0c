package models

import "time"

// User represents a registered user
type User struct {
	ID           string    `json:"id" firestore:"-"`
	Email        string    `json:"email" firestore:"email"`
	Name         string    `json:"name" firestore:"name"`
	PasswordHash string    `json:"-" firestore:"passwordHash"`
	ResumeURL    string    `json:"resume_url,omitempty" firestore:"resumeUrl"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}
