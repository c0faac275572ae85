// Package profile builds the account menu shown in the storefront header.
package profile

import (
	"errors"
	"math/rand/v2"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/format"
	"storefront/internal/pkg/guard"
	"storefront/internal/pkg/i18n"
)

// DefaultAvatarURL is used when a user has no picture.
const DefaultAvatarURL = "https://github.com/shadcn.png"

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	name     string
	email    string
	imageURL string
	role     Role
	guard    guard.ConstructorGuard
}

// NewUser builds a signed-in user. Unknown roles get the plain user menu.
func NewUser(name, email, imageURL string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" && email == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &User{
		name:     name,
		email:    email,
		imageURL: strings.TrimSpace(imageURL),
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

type ItemKind string

const (
	ItemSignIn   ItemKind = "sign_in"
	ItemSignUp   ItemKind = "sign_up"
	ItemAdmin    ItemKind = "admin"
	ItemProfile  ItemKind = "profile"
	ItemWishlist ItemKind = "wishlist"
	ItemOrders   ItemKind = "orders"
	ItemSignOut  ItemKind = "sign_out"
)

type Item struct {
	Kind  ItemKind `json:"kind"`
	Label string   `json:"label"`
	// Href is empty for items handled by the client, such as sign-out.
	Href string `json:"href,omitempty"`
	// SeparatorBefore marks the start of a new group.
	SeparatorBefore bool `json:"separatorBefore,omitempty"`
}

type Header struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	AvatarURL     string `json:"avatarUrl"`
	FallbackColor string `json:"fallbackColor"`
}

type Menu struct {
	Label         string  `json:"label"`
	Authenticated bool    `json:"authenticated"`
	Header        *Header `json:"header,omitempty"`
	Items         []Item  `json:"items"`
}

// BuildMenu returns the anonymous menu when user is nil.
func BuildMenu(user *User, locale i18n.Locale, rng *rand.Rand) (Menu, error) {
	menu := Menu{Label: locale.Sprintf(i18n.KeyProfileAccountMenu)}

	if user == nil {
		menu.Items = []Item{
			{Kind: ItemSignIn, Label: locale.Sprintf(i18n.KeyProfileSignIn), Href: "/auth/sign-in"},
			{Kind: ItemSignUp, Label: locale.Sprintf(i18n.KeyProfileSignUp), Href: "/auth/sign-up"},
		}
		return menu, nil
	}
	if err := user.Validate(); err != nil {
		return Menu{}, err
	}

	avatar := user.imageURL
	if avatar == "" {
		avatar = DefaultAvatarURL
	}
	menu.Authenticated = true
	menu.Header = &Header{
		Name:          user.name,
		Email:         user.email,
		AvatarURL:     avatar,
		FallbackColor: "#" + format.GenerateRandomHexCode(rng),
	}

	if user.IsAdmin() {
		menu.Items = append(menu.Items, Item{Kind: ItemAdmin, Label: locale.Sprintf(i18n.KeyProfileAdmin), Href: "/admin"})
	}
	menu.Items = append(menu.Items,
		Item{Kind: ItemProfile, Label: locale.Sprintf(i18n.KeyProfileProfile), Href: "/profile"},
		Item{Kind: ItemWishlist, Label: locale.Sprintf(i18n.KeyProfileWishlist), Href: "/wishlist"},
		Item{Kind: ItemOrders, Label: locale.Sprintf(i18n.KeyProfileOrders), Href: "/orders"},
		Item{Kind: ItemSignOut, Label: locale.Sprintf(i18n.KeyProfileSignOut), SeparatorBefore: true},
	)
	menu.Items[0].SeparatorBefore = true

	return menu, nil
}
