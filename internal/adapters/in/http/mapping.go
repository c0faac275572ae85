package http

import (
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/bird"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/profile"
	"storefront/internal/generated/servers"
)

func toAreas(areas []queries.AreaResponse) []servers.Area {
	out := make([]servers.Area, len(areas))
	for i, a := range areas {
		out[i] = toArea(a)
	}
	return out
}

func toArea(a queries.AreaResponse) servers.Area {
	area := servers.Area{Code: a.Code, Name: a.Name}
	if a.ParentCode != 0 {
		parent := a.ParentCode
		area.ParentCode = &parent
	}
	return area
}

func toOptionalArea(a *queries.AreaResponse) *servers.Area {
	if a == nil {
		return nil
	}
	area := toArea(*a)
	return &area
}

func toDeliveryForm(f queries.GetDeliveryFormQueryResponse) servers.DeliveryForm {
	return servers.DeliveryForm{
		Id:       f.ID.Bytes(),
		Variant:  servers.DeliveryVariant(f.Variant),
		Stage:    servers.DeliveryFormStage(f.Stage),
		Province: toOptionalArea(f.Province),
		District: toOptionalArea(f.District),
		Ward:     toOptionalArea(f.Ward),
		Location: servers.Location{
			Province: f.Location.Province,
			District: f.Location.District,
			Ward:     f.Location.Ward,
		},
		Districts: toAreas(f.Districts),
		Wards:     toAreas(f.Wards),
		TouchedAt: f.TouchedAt,
	}
}

func toFields(body servers.DeliveryFields) delivery.Fields {
	fields := delivery.Fields{
		Receiver:    deref(body.Receiver),
		PhoneNumber: deref(body.PhoneNumber),
		Address:     deref(body.Address),
		Notice:      deref(body.Notice),
	}
	if body.Type != nil {
		fields.Type = string(*body.Type)
	}
	return fields
}

func toDeliveryInfo(info delivery.Info) servers.DeliveryInfo {
	out := servers.DeliveryInfo{
		Receiver:    info.Receiver,
		PhoneNumber: info.PhoneNumber,
		Province:    info.Province,
		District:    info.District,
		Ward:        info.Ward,
		Address:     info.Address,
		Notice:      optional(info.Notice),
	}
	if info.Type != "" {
		t := servers.PaymentType(info.Type)
		out.Type = &t
	}
	return out
}

func toSubmitResult(r commands.SubmitDeliveryFormResult) servers.SubmitResult {
	out := servers.SubmitResult{
		Variant: servers.DeliveryVariant(r.Variant),
		Info:    toDeliveryInfo(r.Info),
	}
	if r.AddressID != nil {
		id := r.AddressID.Bytes()
		out.AddressId = &id
	}
	return out
}

func toBirdCard(c bird.Card) servers.BirdCard {
	actions := make([]servers.BirdCardAction, len(c.Actions))
	for i, a := range c.Actions {
		actions[i] = servers.BirdCardAction{
			Kind:    string(a.Kind),
			Label:   a.Label,
			Primary: a.Primary,
			Toast:   optional(a.Toast),
		}
	}
	return servers.BirdCard{
		Id:          c.ID,
		Title:       c.Title,
		Type:        string(c.Type),
		TypeLabel:   c.TypeLabel,
		Price:       c.Price,
		PriceLabel:  c.PriceLabel,
		Gender:      optional(string(c.Gender)),
		GenderLabel: optional(c.GenderLabel),
		Image:       c.Image,
		HasImage:    c.HasImage,
		Link:        c.Link,
		Actions:     actions,
	}
}

func toProfileMenu(m profile.Menu) servers.ProfileMenu {
	items := make([]servers.ProfileMenuItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = servers.ProfileMenuItem{
			Kind:  string(item.Kind),
			Label: item.Label,
			Href:  optional(item.Href),
		}
		if item.SeparatorBefore {
			separator := true
			items[i].SeparatorBefore = &separator
		}
	}

	menu := servers.ProfileMenu{
		Label:         m.Label,
		Authenticated: m.Authenticated,
		Items:         items,
	}
	if m.Header != nil {
		menu.Header = &servers.ProfileMenuHeader{
			Name:          m.Header.Name,
			Email:         m.Header.Email,
			AvatarUrl:     m.Header.AvatarURL,
			FallbackColor: m.Header.FallbackColor,
		}
	}
	return menu
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
