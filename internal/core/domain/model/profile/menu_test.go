package profile_test

import (
	"math/rand/v2"
	"testing"

	"storefront/internal/core/domain/model/profile"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func kinds(items []profile.Item) []profile.ItemKind {
	out := make([]profile.ItemKind, 0, len(items))
	for _, item := range items {
		out = append(out, item.Kind)
	}
	return out
}

func TestBuildMenu_Anonymous(t *testing.T) {
	menu, err := profile.BuildMenu(nil, i18n.Default(), rng())
	require.NoError(t, err)

	assert.False(t, menu.Authenticated)
	assert.Nil(t, menu.Header)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, profile.Item{Kind: profile.ItemSignIn, Label: "Đăng nhập", Href: "/auth/sign-in"}, menu.Items[0])
	assert.Equal(t, profile.Item{Kind: profile.ItemSignUp, Label: "Đăng ký", Href: "/auth/sign-up"}, menu.Items[1])
}

func TestBuildMenu_User(t *testing.T) {
	user, err := profile.NewUser("An", "an@example.com", "", profile.RoleUser)
	require.NoError(t, err)

	menu, err := profile.BuildMenu(user, i18n.Default(), rng())
	require.NoError(t, err)

	assert.True(t, menu.Authenticated)
	require.NotNil(t, menu.Header)
	assert.Equal(t, "An", menu.Header.Name)
	assert.Equal(t, profile.DefaultAvatarURL, menu.Header.AvatarURL)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, menu.Header.FallbackColor)

	assert.Equal(t, []profile.ItemKind{
		profile.ItemProfile, profile.ItemWishlist, profile.ItemOrders, profile.ItemSignOut,
	}, kinds(menu.Items))
	assert.Equal(t, "/orders", menu.Items[2].Href)
	assert.Empty(t, menu.Items[3].Href)
	assert.True(t, menu.Items[3].SeparatorBefore)
}

func TestBuildMenu_Admin(t *testing.T) {
	user, err := profile.NewUser("Root", "root@example.com", "https://cdn.example.com/me.png", profile.RoleAdmin)
	require.NoError(t, err)

	menu, err := profile.BuildMenu(user, i18n.Default(), rng())
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/me.png", menu.Header.AvatarURL)
	require.NotEmpty(t, menu.Items)
	assert.Equal(t, profile.Item{Kind: profile.ItemAdmin, Label: "Admin", Href: "/admin", SeparatorBefore: true}, menu.Items[0])
	assert.Len(t, menu.Items, 5)
}

func TestNewUser_RequiresIdentity(t *testing.T) {
	_, err := profile.NewUser(" ", "", "", profile.RoleUser)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = profile.BuildMenu(&profile.User{}, i18n.Default(), rng())
	require.ErrorIs(t, err, profile.ErrUserIsNotConstructed)
}
