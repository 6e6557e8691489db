package order

import "fmt"

// FormatConfirmation builds the thank-you sentence for a submitted order.
func FormatConfirmation(snapshot FormState) string {
	return fmt.Sprintf(
		"Thank you for your order, %s! Your %s pizza with %s is on the way.",
		snapshot.FullName,
		snapshot.Size.Word(),
		ToppingCount(len(snapshot.Toppings)),
	)
}

// ToppingCount pluralises a topping count: "no toppings", "1 topping",
// "n toppings".
func ToppingCount(n int) string {
	switch {
	case n <= 0:
		return "no toppings"
	case n == 1:
		return "1 topping"
	default:
		return fmt.Sprintf("%d toppings", n)
	}
}
