package bird

import (
	"net/url"

	"storefront/internal/pkg/format"
	"storefront/internal/pkg/i18n"
)

// NoImagePath is shown when a bird has no usable image.
const NoImagePath = "/assets/no-image.avif"

type ActionKind string

const (
	ActionAddToCart ActionKind = "add_to_cart"
	ActionCompare   ActionKind = "compare"
	ActionBuyNow    ActionKind = "buy_now"
	ActionBreed     ActionKind = "breed"
)

type Action struct {
	Kind    ActionKind `json:"kind"`
	Label   string     `json:"label"`
	Primary bool       `json:"primary"`
	// Toast is shown after the action succeeds.
	Toast string `json:"toast,omitempty"`
}

// Card is the product-card view of a bird.
type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        Type     `json:"type"`
	TypeLabel   string   `json:"typeLabel"`
	Price       string   `json:"price"`
	PriceLabel  string   `json:"priceLabel"`
	Gender      Gender   `json:"gender,omitempty"`
	GenderLabel string   `json:"genderLabel,omitempty"`
	Image       string   `json:"image"`
	HasImage    bool     `json:"hasImage"`
	Link        string   `json:"link"`
	Actions     []Action `json:"actions"`
}

func RenderCard(b *Bird, locale i18n.Locale) (Card, error) {
	if err := b.Validate(); err != nil {
		return Card{}, err
	}

	price := format.FormatPrice(b.Price(), locale)
	card := Card{
		ID:    b.id,
		Title: b.name,
		Type:  b.kind,
		Price: price,
		Image: NoImagePath,
		Link:  "/birds/" + url.PathEscape(b.id),
	}

	if len(b.imageURLs) > 0 && isDisplayableImage(b.imageURLs[0]) {
		card.Image = b.imageURLs[0]
		card.HasImage = true
	}

	compare := Action{Kind: ActionCompare, Label: locale.Sprintf(i18n.KeyBirdCompare)}

	switch b.kind {
	case Breed:
		card.TypeLabel = locale.Sprintf(i18n.KeyBirdTypeBreed)
		card.PriceLabel = locale.Sprintf(i18n.KeyBirdPriceBreed, price)
		card.Gender = b.gender
		card.GenderLabel = genderLabel(b.gender, locale)
		card.Actions = []Action{
			compare,
			{Kind: ActionBreed, Label: locale.Sprintf(i18n.KeyBirdBreed), Primary: true},
		}
	default:
		card.TypeLabel = locale.Sprintf(i18n.KeyBirdTypeSell)
		card.PriceLabel = locale.Sprintf(i18n.KeyBirdPriceSell, price)
		card.Actions = []Action{
			{
				Kind:  ActionAddToCart,
				Label: locale.Sprintf(i18n.KeyBirdAddToCart),
				Toast: locale.Sprintf(i18n.KeyBirdAddedToCart),
			},
			compare,
			{Kind: ActionBuyNow, Label: locale.Sprintf(i18n.KeyBirdBuyNow), Primary: true},
		}
	}

	return card, nil
}

func genderLabel(g Gender, locale i18n.Locale) string {
	if g == Male {
		return locale.Sprintf(i18n.KeyBirdGenderMale)
	}
	return locale.Sprintf(i18n.KeyBirdGenderFemale)
}

// isDisplayableImage accepts absolute http(s) URLs and base64 image data URIs.
func isDisplayableImage(src string) bool {
	if format.IsBase64Image(src) {
		return true
	}
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
