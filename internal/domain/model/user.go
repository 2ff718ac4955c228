package model

// 購入者
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(255);not null;uniqueIndex" json:"username"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`

	//bcryptハッシュを保存（平文は保存しない）
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}
