package models

const (
	WatchListCollection = "watchList"

	FieldOwnerEmail = "email"
)
