package model

// Project is a learner-submitted portfolio entry.
// swagger:model Project
type Project struct {
	UUIDBase
	UserID      uint     `gorm:"index;type:bigint unsigned" json:"userId"`
	Title       string   `gorm:"size:200;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	RepoURL     string   `gorm:"size:255" json:"repoUrl"`
	FileURL     string   `gorm:"size:255" json:"fileUrl"`
	Tags        []string `gorm:"type:json;serializer:json" json:"tags"`
	Upvotes     int      `gorm:"default:0" json:"upvotes"`
	Comments    int      `gorm:"default:0" json:"comments"`
	IsPublic    bool     `gorm:"default:true" json:"isPublic"`
}

func (Project) TableName() string {
	return "projects"
}
