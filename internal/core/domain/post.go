package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("validation failed")

// Comment is an embedded sub-document of a Post. Once appended it is
// immutable and has no lifecycle outside its parent.
type Comment struct {
	Content   string    `json:"content" bson:"content"`
	Author    string    `json:"author" bson:"author"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Post is the core aggregate: content plus its likes set and comment
// sequence. Author is set once at creation and never changes.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Author    string    `json:"author" bson:"author"`
	Likes     []string  `json:"likes" bson:"likes"`
	Comments  []Comment `json:"comments" bson:"comments"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ActivityAction identifies a recorded post mutation.
type ActivityAction string

const (
	ActivityCreated   ActivityAction = "created"
	ActivityUpdated   ActivityAction = "updated"
	ActivityDeleted   ActivityAction = "deleted"
	ActivityLiked     ActivityAction = "liked"
	ActivityUnliked   ActivityAction = "unliked"
	ActivityCommented ActivityAction = "commented"
)

// Activity is one entry in the append-only post audit trail.
type Activity struct {
	PostID    string
	ActorID   string
	Action    ActivityAction
	Timestamp time.Time
}
