package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printTrucks(w io.Writer, trucks []queries.TruckResponse) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tREGISTRATION\tCAPACITY\tFUEL\tSTATUS")
	for _, t := range trucks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Registration, formatFloat(t.Capacity), formatFloat(t.FuelConsumption), t.Status)
	}
	return tw.Flush()
}

func printDrivers(w io.Writer, drivers []queries.DriverResponse) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tLICENSE\tAVAILABLE")
	for _, d := range drivers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", d.ID, d.FullName, d.License, d.Available)
	}
	return tw.Flush()
}

func printShipments(w io.Writer, shipments []queries.ShipmentResponse) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tPLANNED\tSTATUS\tWEIGHT\tDISTANCE\tTRUCK\tDRIVER\tCOST\tDESCRIPTION")
	for _, s := range shipments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			kernel.DateOf(s.PlannedDate),
			s.Status,
			formatFloat(s.Weight),
			formatFloat(s.Distance),
			formatRef(s.TruckID),
			formatRef(s.DriverID),
			s.Cost,
			s.Description,
		)
	}
	return tw.Flush()
}

func printShipment(w io.Writer, s queries.ShipmentResponse) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", s.ID)
	fmt.Fprintf(tw, "Order number:\t%s\n", s.OrderNumber)
	fmt.Fprintf(tw, "Description:\t%s\n", s.Description)
	fmt.Fprintf(tw, "Weight (t):\t%s\n", formatFloat(s.Weight))
	fmt.Fprintf(tw, "Refrigerated:\t%t\n", s.Refrigerated)
	fmt.Fprintf(tw, "Distance (km):\t%s\n", formatFloat(s.Distance))
	fmt.Fprintf(tw, "Planned:\t%s\n", kernel.DateOf(s.PlannedDate))
	fmt.Fprintf(tw, "Truck:\t%s\n", formatRef(s.TruckID))
	fmt.Fprintf(tw, "Driver:\t%s\n", formatRef(s.DriverID))
	fmt.Fprintf(tw, "Departure:\t%s\n", formatTime(s.DepartureTime))
	fmt.Fprintf(tw, "Arrival:\t%s\n", formatTime(s.ArrivalTime))
	fmt.Fprintf(tw, "Status:\t%s\n", s.Status)
	fmt.Fprintf(tw, "Cost:\t%s\n", s.Cost)
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRef(id *kernel.ID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateTime)
}
