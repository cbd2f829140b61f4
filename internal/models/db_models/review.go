package db_models

type Review struct {
	BaseModel
	Name     string `gorm:"type:varchar(80);not null"`
	Rating   int    `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Feedback string `gorm:"type:text;not null"`
}
