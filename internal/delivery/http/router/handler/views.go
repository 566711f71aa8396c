package handler

import (
	"time"

	"greeniecart/internal/domain/entity"
	"greeniecart/internal/usecase"

	"github.com/google/uuid"
)

// View models keep wire shapes stable and out of the domain entities.
// Sensitive fields like the verification token never leave the server.

type userView struct {
	ID            uuid.UUID `json:"id"`
	DisplayID     string    `json:"display_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Contact       string    `json:"contact"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func newUserView(u *entity.User) userView {
	return userView{
		ID:            u.ID,
		DisplayID:     u.DisplayID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Contact:       u.Contact,
		Email:         u.Email,
		Address:       u.Address,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

type sessionView struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         userView `json:"user"`
}

func newSessionView(out *usecase.LoginOutput) sessionView {
	return sessionView{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         newUserView(out.User),
	}
}

type productView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	ImageURL  string    `json:"image"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProductView(p *entity.Product) productView {
	return productView{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		ImageURL:  p.ImageURL,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}

	return views
}

type cartItemView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

func newCartItemView(item *entity.CartItem) cartItemView {
	return cartItemView{
		ID:        item.ID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		ImageURL:  item.ImageURL,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal(),
	}
}

type cartView struct {
	Items []cartItemView `json:"items"`
	Total float64        `json:"total"`
}

func newCartView(out *usecase.CartOutput) cartView {
	items := make([]cartItemView, 0, len(out.Items))
	for _, item := range out.Items {
		items = append(items, newCartItemView(item))
	}

	return cartView{Items: items, Total: out.Total}
}

type orderItemView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	ImageURL  string    `json:"image"`
}

type orderView struct {
	ID        uuid.UUID       `json:"id"`
	Items     []orderItemView `json:"items"`
	Total     float64         `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

func newOrderView(order *entity.Order) orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}

	return orderView{
		ID:        order.ID,
		Items:     items,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}
