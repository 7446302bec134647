package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	GameReviewCollection = "gameReviews"

	FieldName        = "name"
	FieldPhoto       = "photo"
	FieldDescription = "description"
	FieldGenre       = "genre"
	FieldYear        = "year"
	FieldRating      = "rating"
	FieldUserName    = "userName"
	FieldUserEmail   = "userEmail"

	// LegacyFieldUsername is the lowercase spelling older clients send for
	// FieldUserName.
	LegacyFieldUsername = "username"
)

// GameReviewUpdateFields lists the fields a PUT may set on a review.
var GameReviewUpdateFields = []string{
	FieldPhoto,
	FieldName,
	FieldYear,
	FieldUserName,
	FieldUserEmail,
	FieldDescription,
	FieldRating,
	FieldGenre,
}

// GameReviewModel is the canonical shape of a review. Stored documents are
// not required to match it; handlers read and write raw documents so that
// unknown fields pass through.
type GameReviewModel struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	Photo       string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Genre       string             `json:"genre,omitempty" bson:"genre,omitempty"`
	Year        int                `json:"year,omitempty" bson:"year,omitempty"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	UserName    string             `json:"userName,omitempty" bson:"userName,omitempty"`
	UserEmail   string             `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
}
