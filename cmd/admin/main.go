package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"rentacar/adminclient"
	"rentacar/config"
	"rentacar/models"
)

func main() {
	cmd := flag.String("cmd", "vehicles", "Command: login|logout|vehicles|vehicle-add|vehicle-edit|vehicle-delete|reservations|book|set-status|reservation-delete")
	apiFlag := flag.String("api", "", "Override API root (e.g. https://api.example.com/api)")
	id := flag.String("id", "", "Vehicle or reservation ID")
	yes := flag.Bool("yes", false, "Skip interactive confirmation")

	email := flag.String("email", "", "Admin email (login)")
	password := flag.String("password", "", "Admin password (login)")

	name := flag.String("name", "", "Vehicle name")
	price := flag.String("price", "", "Daily price")
	description := flag.String("description", "", "Vehicle description")
	transmission := flag.String("transmission", "", "Transmission (Manuelle|Automatique)")
	fuel := flag.String("fuel", "", "Fuel (Essence|Diesel)")
	power := flag.String("power", "", "Engine power")
	seats := flag.Int("seats", 5, "Seat count")
	consumption := flag.String("consumption", "", "Consumption, e.g. 6.5L/100km")
	luggage := flag.String("luggage", "", "Luggage capacity")
	features := flag.String("features", "", "Comma-separated feature labels")
	popular := flag.Bool("popular", false, "Mark vehicle as popular")
	imagePath := flag.String("image", "", "Path to the primary image file")
	galleryPaths := flag.String("gallery", "", "Comma-separated paths of gallery image files")

	startDate := flag.String("start", "", "Reservation start date (YYYY-MM-DD)")
	endDate := flag.String("end", "", "Reservation end date (YYYY-MM-DD)")
	phone := flag.String("phone", "", "Contact phone number")
	pickup := flag.String("pickup", "", "Pickup agency")
	dropoff := flag.String("dropoff", "", "Drop-off agency")
	status := flag.String("status", "", "Reservation status (en attente|en cours|terminé)")

	flag.Parse()

	cfg := config.Load()
	apiURL := cfg.ClientAPIURL()
	if env := os.Getenv("RENTACAR_API"); env != "" {
		apiURL = env
	}
	if *apiFlag != "" {
		apiURL = *apiFlag
	}

	client := adminclient.New(apiURL)
	session, err := adminclient.NewSession(client, "")
	if err != nil {
		fatal(err)
	}
	catalog := adminclient.NewCatalog(client)
	form := adminclient.NewVehicleForm(client, catalog)
	reservations := adminclient.NewReservationController(client, catalog)
	reservations.Confirm = func(prompt string) bool {
		if *yes {
			return true
		}
		fmt.Printf("%s [y/N] ", prompt)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		return strings.EqualFold(strings.TrimSpace(line), "y")
	}

	switch *cmd {
	case "login":
		if *email == "" || *password == "" {
			fatalf("--email and --password required")
		}
		if err := session.Login(*email, *password); err != nil {
			fatal(err)
		}
		fmt.Println("Logged in as", *email)

	case "logout":
		if err := session.Logout(); err != nil {
			fatal(err)
		}
		fmt.Println("Logged out")

	case "vehicles":
		if err := catalog.RefreshVehicles(); err != nil {
			fatal(err)
		}
		filter := adminclient.VehicleFilter{Transmission: *transmission, Fuel: *fuel}
		for _, v := range catalog.FilterVehicles(filter) {
			fmt.Printf("%s  %-24s %6s DT/jour  %s / %s\n",
				v.ID, v.Name, v.Price, v.Specs.Transmission, v.Specs.Fuel)
		}

	case "vehicle-add", "vehicle-edit":
		requireAuth(session)
		if *cmd == "vehicle-edit" {
			if *id == "" {
				fatalf("--id required")
			}
			v, err := client.GetVehicle(*id)
			if err != nil {
				fatal(err)
			}
			form.Edit(*v)
		}
		fillForm(form, *name, *price, *description, *transmission, *fuel, *power,
			*seats, *consumption, *luggage, *features, *popular)
		if err := attachImages(form, *imagePath, *galleryPaths); err != nil {
			fatal(err)
		}
		if err := form.Submit(); err != nil {
			fatal(err)
		}
		fmt.Println("Vehicle saved")

	case "vehicle-delete":
		requireAuth(session)
		if *id == "" {
			fatalf("--id required")
		}
		if err := reservations.DeleteVehicle(*id); err != nil {
			fatal(err)
		}
		fmt.Println("Vehicle deleted")

	case "reservations":
		requireAuth(session)
		if err := catalog.RefreshReservations(); err != nil {
			fatal(err)
		}
		for _, r := range catalog.Reservations() {
			fmt.Printf("%s  %-20s %s -> %s  [%s] (%s)\n",
				r.ID, r.VehicleName, r.StartDate, r.EndDate,
				r.Status, models.StatusBadge(r.Status))
		}
		stats := catalog.Stats()
		fmt.Printf("\nactive: %d  pending: %d  completed: %d\n",
			stats.Active, stats.Pending, stats.Completed)

	case "book":
		if *id == "" {
			fatalf("--id (vehicle) required")
		}
		v, err := client.GetVehicle(*id)
		if err != nil {
			fatal(err)
		}
		r, err := client.CreateReservation(models.ReservationRequest{
			VehicleID:       v.ID,
			VehicleName:     v.Name,
			StartDate:       *startDate,
			EndDate:         *endDate,
			LicenseNumber:   *phone,
			PickupLocation:  *pickup,
			DropoffLocation: *dropoff,
		})
		if err != nil {
			fatal(err)
		}
		fmt.Println("Reservation created:", r.ID)

	case "set-status":
		requireAuth(session)
		if *id == "" || *status == "" {
			fatalf("--id and --status required")
		}
		if err := reservations.UpdateStatus(*id, *status); err != nil {
			fatal(err)
		}
		fmt.Println("Status updated")

	case "reservation-delete":
		requireAuth(session)
		if *id == "" {
			fatalf("--id required")
		}
		if err := reservations.Delete(*id); err != nil {
			fatal(err)
		}
		fmt.Println("Reservation deleted")

	default:
		fatalf("unknown command %q", *cmd)
	}
}

func fillForm(form *adminclient.VehicleForm, name, price, description, transmission,
	fuel, power string, seats int, consumption, luggage, features string, popular bool) {
	if name != "" {
		form.Name = name
	}
	if price != "" {
		form.Price = price
	}
	if description != "" {
		form.Description = description
	}
	if transmission != "" {
		form.Specs.Transmission = transmission
	}
	if fuel != "" {
		form.Specs.Fuel = fuel
	}
	if power != "" {
		form.Specs.Power = power
	}
	if seats > 0 {
		form.Specs.Seats = seats
	}
	if consumption != "" {
		form.Specs.Consumption = consumption
	}
	if luggage != "" {
		form.Specs.Luggage = luggage
	}
	if popular {
		form.IsPopular = true
	}
	if features != "" {
		for _, label := range strings.Split(features, ",") {
			if err := form.AddFeature(strings.TrimSpace(label)); err != nil {
				fmt.Println("Warning:", err)
				break
			}
		}
	}
}

func attachImages(form *adminclient.VehicleForm, imagePath, galleryPaths string) error {
	if imagePath != "" {
		img, closeFn, err := adminclient.OpenImageFile(imagePath)
		if err != nil {
			return err
		}
		err = form.AttachImage(img)
		closeFn()
		if err != nil {
			return err
		}
	}

	if galleryPaths != "" {
		var files []*adminclient.ImageFile
		var closers []func() error
		for _, p := range strings.Split(galleryPaths, ",") {
			img, closeFn, err := adminclient.OpenImageFile(strings.TrimSpace(p))
			if err != nil {
				for _, c := range closers {
					c()
				}
				return err
			}
			files = append(files, img)
			closers = append(closers, closeFn)
		}
		err := form.AttachGallery(files)
		for _, c := range closers {
			c()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func requireAuth(session *adminclient.Session) {
	if err := session.Require(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	os.Exit(1)
}
