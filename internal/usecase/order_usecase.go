package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 表示用の日時フォーマット（タイムゾーンオフセットは付けない）
const orderDateLayout = "2006-01-02T15:04:05"

// OrderUsecase は注文確定（カートのドレイン）と注文照会。
// 確定処理は1トランザクションで行い、途中で商品が消えていたら
// 注文の作成もカートの削除も全て巻き戻す。
type OrderUsecase struct {
	tx repo.TransactionManager

	//保存はUTC、表示はこのタイムゾーン
	displayLoc *time.Location
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, displayLoc *time.Location) *OrderUsecase {
	return &OrderUsecase{tx: tx, displayLoc: displayLoc}
}

// 注文確定時のレスポンス（リファレンスの形：productsとquantityはリスト）
type PlacedOrderView struct {
	ID          int64           `json:"id"`
	UserDetails UserView        `json:"user_details"`
	Products    []model.Product `json:"products"`
	Quantity    []int64         `json:"quantity"`
	TotalAmount float64         `json:"total_amount"`
	OrderDate   string          `json:"order_date"`
}

// 注文照会のレスポンス（1注文=1商品）
type OrderView struct {
	ID          int64         `json:"id"`
	UserDetails UserView      `json:"user_details"`
	Products    model.Product `json:"products"`
	Quantity    int64         `json:"quantity"`
	TotalAmount float64       `json:"total_amount"`
	OrderDate   string        `json:"order_date"`
}

// 削除した注文のスナップショット
type DeletedOrderView struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	ProductID   int64   `json:"product_id"`
	Quantity    int64   `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
	OrderDate   string  `json:"order_date"`
	Message     string  `json:"message"`
}

// Place はユーザーのカートを注文へ変換する。
// カートの物理行1行につき注文レコードを1件作り（ここでは集約しない）、
// 最後に明細を一括削除する。全工程が1トランザクション。
func (u *OrderUsecase) Place(ctx context.Context, userID int64) ([]PlacedOrderView, error) {
	var outs []PlacedOrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(items) == 0 {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("no cart items found for user %d", userID))
		}

		user, err := r.Users().FindByID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]PlacedOrderView, 0, len(items))

		for _, item := range items {
			p, err := r.Products().FindByID(ctx, item.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				//ここでreturnすると全件ロールバック
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with id %d not found", item.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//確定時点の金額で凍結
			total := p.Price * float64(item.Quantity)

			created, err := r.Orders().Create(ctx, model.Order{
				UserID:      userID,
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				TotalAmount: total,
				OrderDate:   time.Now().UTC(),
			})
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			outs = append(outs, PlacedOrderView{
				ID:          created.ID,
				UserDetails: toUserView(user),
				Products:    []model.Product{p},
				Quantity:    []int64{item.Quantity},
				TotalAmount: total,
				OrderDate:   u.formatOrderDate(created.OrderDate),
			})
		}

		//カートを空にする
		if err := r.CartItems().DeleteByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})

	if err != nil {
		return []PlacedOrderView{}, err
	}
	return outs, nil
}

// ListByUser はユーザーの注文履歴
func (u *OrderUsecase) ListByUser(ctx context.Context, userID int64) ([]OrderView, error) {
	var outs []OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(orders) == 0 {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("no orders found for user %d", userID))
		}

		outs, err = u.buildOrderViews(ctx, r, orders)
		return err
	})

	if err != nil {
		return []OrderView{}, err
	}
	return outs, nil
}

// ListByAdmin は出品者の商品に対する注文一覧
func (u *OrderUsecase) ListByAdmin(ctx context.Context, adminID int64) ([]OrderView, error) {
	var outs []OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByAdminID(ctx, adminID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(orders) == 0 {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("no orders found for admin %d", adminID))
		}

		outs, err = u.buildOrderViews(ctx, r, orders)
		return err
	})

	if err != nil {
		return []OrderView{}, err
	}
	return outs, nil
}

// Delete は注文を1件削除し、削除したレコードのスナップショットを返す。
func (u *OrderUsecase) Delete(ctx context.Context, orderID int64) (DeletedOrderView, error) {
	var out DeletedOrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("order with id %d not found", orderID))
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Orders().DeleteByID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = DeletedOrderView{
			ID:          o.ID,
			UserID:      o.UserID,
			ProductID:   o.ProductID,
			Quantity:    o.Quantity,
			TotalAmount: o.TotalAmount,
			OrderDate:   u.formatOrderDate(o.OrderDate),
			Message:     fmt.Sprintf("order %d deleted successfully", o.ID),
		}
		return nil
	})

	if err != nil {
		return DeletedOrderView{}, err
	}
	return out, nil
}

// 注文ごとにユーザーと商品を引き直してビューを組み立てる
func (u *OrderUsecase) buildOrderViews(ctx context.Context, r repo.TxRepos, orders []model.Order) ([]OrderView, error) {
	outs := make([]OrderView, 0, len(orders))

	for _, o := range orders {
		user, err := r.Users().FindByID(ctx, o.UserID)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, fmt.Sprintf("user with id %d not found", o.UserID))
		}
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p, err := r.Products().FindByID(ctx, o.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with id %d not found", o.ProductID))
		}
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = append(outs, OrderView{
			ID:          o.ID,
			UserDetails: toUserView(user),
			Products:    p,
			Quantity:    o.Quantity,
			TotalAmount: o.TotalAmount,
			OrderDate:   u.formatOrderDate(o.OrderDate),
		})
	}

	return outs, nil
}

// UTCで保存した日時を表示タイムゾーンに変換して整形
func (u *OrderUsecase) formatOrderDate(t time.Time) string {
	return t.In(u.displayLoc).Format(orderDateLayout)
}
