package model

// ProgressEntry is one key-value row of the database-backed progress store.
// Keys are namespaced per user and entity type (completion vs activity), so
// the two record families never intermix.
type ProgressEntry struct {
	Key   string `gorm:"column:k;primaryKey;type:varchar(191)"`
	Value string `gorm:"column:v;type:text"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}
