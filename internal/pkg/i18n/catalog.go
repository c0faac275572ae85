package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	KeyAgeUnknown = "age.unknown"
	KeyAgeMonths  = "age.months"

	KeyTimePast   = "time.past"
	KeyTimeFuture = "time.future"
	KeyTimeS      = "time.s"
	KeyTimeM      = "time.m"
	KeyTimeMM     = "time.mm"
	KeyTimeH      = "time.h"
	KeyTimeHH     = "time.hh"
	KeyTimeD      = "time.d"
	KeyTimeDD     = "time.dd"
	KeyTimeMo     = "time.mo"
	KeyTimeMMo    = "time.mmo"
	KeyTimeY      = "time.y"
	KeyTimeYY     = "time.yy"

	KeyDateLong = "date.long"

	KeyValidationRequired = "validation.required"
	KeyValidationOneOf    = "validation.oneof"
	KeyValidationMax      = "validation.max"
	KeyValidationInvalid  = "validation.invalid"

	KeyBirdTypeSell       = "bird.type.sell"
	KeyBirdTypeBreed      = "bird.type.breed"
	KeyBirdPriceSell      = "bird.price.sell"
	KeyBirdPriceBreed     = "bird.price.breed"
	KeyBirdAddToCart      = "bird.action.add_to_cart"
	KeyBirdCompare        = "bird.action.compare"
	KeyBirdBuyNow         = "bird.action.buy_now"
	KeyBirdBreed          = "bird.action.breed"
	KeyBirdAddedToCart    = "bird.toast.added_to_cart"
	KeyBirdGenderMale     = "bird.gender.male"
	KeyBirdGenderFemale   = "bird.gender.female"
	KeyProfileSignIn      = "profile.sign_in"
	KeyProfileSignUp      = "profile.sign_up"
	KeyProfileAdmin       = "profile.admin"
	KeyProfileProfile     = "profile.profile"
	KeyProfileWishlist    = "profile.wishlist"
	KeyProfileOrders      = "profile.orders"
	KeyProfileSignOut     = "profile.sign_out"
	KeyProfileAccountMenu = "profile.account_menu"
)

// MonthKey returns the catalog key of a month name.
func MonthKey(month int) string {
	return fmt.Sprintf("month.%d", month)
}

// StatusLabelKey and StatusMessageKey return catalog keys for order status text.
func StatusLabelKey(status string) string   { return "status." + status + ".label" }
func StatusMessageKey(status string) string { return "status." + status + ".message" }

var storefrontCatalog = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Vietnamese))
	for tag, messages := range map[language.Tag]map[string]string{
		language.Vietnamese: vietnamese(),
		language.English:    english(),
	} {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: set %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

func vietnamese() map[string]string {
	m := map[string]string{
		KeyAgeUnknown: "Không có thông tin",
		KeyAgeMonths:  "%d tháng tuổi",

		KeyTimePast:   "%s trước",
		KeyTimeFuture: "%s tới",
		KeyTimeS:      "vài giây",
		KeyTimeM:      "một phút",
		KeyTimeMM:     "%d phút",
		KeyTimeH:      "một giờ",
		KeyTimeHH:     "%d giờ",
		KeyTimeD:      "một ngày",
		KeyTimeDD:     "%d ngày",
		KeyTimeMo:     "một tháng",
		KeyTimeMMo:    "%d tháng",
		KeyTimeY:      "một năm",
		KeyTimeYY:     "%d năm",

		KeyDateLong: "%[1]d %[2]s, %[3]s",

		KeyValidationRequired: "Trường này là bắt buộc",
		KeyValidationOneOf:    "Phải là một trong: %s",
		KeyValidationMax:      "Tối đa %s ký tự",
		KeyValidationInvalid:  "Giá trị không hợp lệ",

		KeyBirdTypeSell:       "Chim kiểng",
		KeyBirdTypeBreed:      "Chim phối giống",
		KeyBirdPriceSell:      "Giá bán: %s",
		KeyBirdPriceBreed:     "Giá phối giống: %s",
		KeyBirdAddToCart:      "Thêm vào giỏ",
		KeyBirdCompare:        "So sánh",
		KeyBirdBuyNow:         "Mua ngay",
		KeyBirdBreed:          "Phối giống",
		KeyBirdAddedToCart:    "Đã thêm chim vào giỏ hàng!",
		KeyBirdGenderMale:     "Trống",
		KeyBirdGenderFemale:   "Mái",
		KeyProfileSignIn:      "Đăng nhập",
		KeyProfileSignUp:      "Đăng ký",
		KeyProfileAdmin:       "Admin",
		KeyProfileProfile:     "Hồ sơ người dùng",
		KeyProfileWishlist:    "Danh sách mong ước",
		KeyProfileOrders:      "Đơn hàng",
		KeyProfileSignOut:     "Đăng Xuất",
		KeyProfileAccountMenu: "Tài khoản",

		StatusLabelKey("processing"):   "Đang chờ xử lý",
		StatusLabelKey("delivering"):   "Đang vận chuyển",
		StatusLabelKey("success"):      "Hoàn thành",
		StatusLabelKey("canceled"):     "Đã hủy",
		StatusLabelKey("breeding"):     "Đang phối giống",
		StatusMessageKey("processing"): "Đơn hàng đang được chuẩn bị",
		StatusMessageKey("delivering"): "Đơn hàng đang trên đường đến tay bạn",
		StatusMessageKey("success"):    "Đơn hàng đã được giao thành công",
		StatusMessageKey("canceled"):   "Đơn hàng đã bị hủy",
	}
	for month := 1; month <= 12; month++ {
		m[MonthKey(month)] = fmt.Sprintf("tháng %d", month)
	}
	return m
}

func english() map[string]string {
	m := map[string]string{
		KeyAgeUnknown: "No information",
		KeyAgeMonths:  "%d months old",

		KeyTimePast:   "%s ago",
		KeyTimeFuture: "in %s",
		KeyTimeS:      "a few seconds",
		KeyTimeM:      "a minute",
		KeyTimeMM:     "%d minutes",
		KeyTimeH:      "an hour",
		KeyTimeHH:     "%d hours",
		KeyTimeD:      "a day",
		KeyTimeDD:     "%d days",
		KeyTimeMo:     "a month",
		KeyTimeMMo:    "%d months",
		KeyTimeY:      "a year",
		KeyTimeYY:     "%d years",

		KeyDateLong: "%[2]s %[1]d, %[3]s",

		KeyValidationRequired: "This field is required",
		KeyValidationOneOf:    "Must be one of: %s",
		KeyValidationMax:      "Must be at most %s characters",
		KeyValidationInvalid:  "Invalid value",

		KeyBirdTypeSell:       "Ornamental bird",
		KeyBirdTypeBreed:      "Breeding bird",
		KeyBirdPriceSell:      "Price: %s",
		KeyBirdPriceBreed:     "Breeding price: %s",
		KeyBirdAddToCart:      "Add to cart",
		KeyBirdCompare:        "Compare",
		KeyBirdBuyNow:         "Buy now",
		KeyBirdBreed:          "Breed",
		KeyBirdAddedToCart:    "Bird added to cart!",
		KeyBirdGenderMale:     "Male",
		KeyBirdGenderFemale:   "Female",
		KeyProfileSignIn:      "Sign in",
		KeyProfileSignUp:      "Sign up",
		KeyProfileAdmin:       "Admin",
		KeyProfileProfile:     "Profile",
		KeyProfileWishlist:    "Wishlist",
		KeyProfileOrders:      "Orders",
		KeyProfileSignOut:     "Sign out",
		KeyProfileAccountMenu: "Account",

		StatusLabelKey("processing"):   "Awaiting processing",
		StatusLabelKey("delivering"):   "In transit",
		StatusLabelKey("success"):      "Completed",
		StatusLabelKey("canceled"):     "Canceled",
		StatusLabelKey("breeding"):     "Breeding",
		StatusMessageKey("processing"): "Your order is being prepared",
		StatusMessageKey("delivering"): "Your order is on its way",
		StatusMessageKey("success"):    "Your order has been delivered",
		StatusMessageKey("canceled"):   "Your order has been canceled",
	}
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	for i, name := range months {
		m[MonthKey(i+1)] = name
	}
	return m
}
