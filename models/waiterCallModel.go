package models

import "time"

type WaiterCall struct {
	ID          string    `bson:"id" json:"id"`
	TableNumber string    `bson:"table_number" json:"tableNumber"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
