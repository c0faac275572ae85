// Package format renders prices, ages, dates and URLs for storefront views.
// Every function that depends on language or time zone takes an i18n.Locale;
// none of them read process-wide locale state.
package format
