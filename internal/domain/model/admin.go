package model

// 出品者（セラー）。商品の所有者で、売上レポートの主体。
type Admin struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminName string `gorm:"column:adminname;type:varchar(255);not null;uniqueIndex" json:"adminname"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`

	//bcryptハッシュを保存
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}
