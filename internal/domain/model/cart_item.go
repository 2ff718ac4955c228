package model

// カートの明細。1ユーザー×1商品につき論理的に1行
// （同一商品の追加は数量加算で吸収する）。
// 出品者は商品経由で引くので、ここには持たない。
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64 `gorm:"not null;index" json:"user_id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`
	Quantity  int64 `gorm:"not null" json:"quantity"`
}
