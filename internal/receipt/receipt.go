// Package receipt renders a plain-text receipt for a booking. Render is
// a pure function of the booking record so every surface (API download,
// email, future PDF pipeline) shares one implementation.
package receipt

import (
	"fmt"
	"strings"

	"github.com/tripora/travel-booking-backend/internal/models"
)

const divider = "----------------------------------------"

// Render returns the receipt document for a booking.
func Render(b *models.Booking) string {
	var sb strings.Builder

	sb.WriteString("TRIPORA BOOKING RECEIPT\n")
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "Confirmation: %s\n", b.ConfirmationNumber)
	fmt.Fprintf(&sb, "Status:       %s\n", b.Status)
	fmt.Fprintf(&sb, "Type:         %s\n", b.BookingType)
	fmt.Fprintf(&sb, "Item:         %s\n", b.ItemID)
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "Name:  %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Email: %s\n", b.CustomerEmail)
	if b.CustomerPhone.Valid {
		fmt.Fprintf(&sb, "Phone: %s\n", b.CustomerPhone.String)
	}
	sb.WriteString(divider + "\n")

	switch b.BookingType {
	case models.BookingTypeHotel:
		if b.RoomType.Valid {
			fmt.Fprintf(&sb, "Room:      %s\n", b.RoomType.String)
		}
		if b.CheckIn.Valid && b.CheckOut.Valid {
			fmt.Fprintf(&sb, "Stay:      %s to %s (%d nights)\n", b.CheckIn.String, b.CheckOut.String, b.Nights)
		}
		fmt.Fprintf(&sb, "Guests:    %d\n", b.Guests)
	case models.BookingTypeRestaurant:
		if b.ReservationDate.Valid {
			fmt.Fprintf(&sb, "Date:      %s\n", b.ReservationDate.String)
		}
		if b.ReservationTime.Valid {
			fmt.Fprintf(&sb, "Time:      %s\n", b.ReservationTime.String)
		}
		fmt.Fprintf(&sb, "Party:     %d\n", b.PartySize)
	case models.BookingTypeFlight, models.BookingTypeBus, models.BookingTypeCar:
		if b.TravelDate.Valid {
			fmt.Fprintf(&sb, "Travel:    %s\n", b.TravelDate.String)
		}
		fmt.Fprintf(&sb, "Travelers: %d\n", b.Passengers)
		if len(b.SelectedSeats) > 0 {
			fmt.Fprintf(&sb, "Seats:     %s\n", strings.Join(b.SelectedSeats, ", "))
		}
		if b.SpecialRequests.Valid && b.SpecialRequests.String != "" {
			fmt.Fprintf(&sb, "Requests:  %s\n", b.SpecialRequests.String)
		}
	}

	if b.TotalAmount > 0 {
		sb.WriteString(divider + "\n")
		fmt.Fprintf(&sb, "Total: $%.2f\n", b.TotalAmount)
	}
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "Booked on %s\n", b.CreatedAt.Format("2006-01-02 15:04 MST"))

	return sb.String()
}
