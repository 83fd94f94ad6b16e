// Package cli implements the vehicle-manager command line on top of an inventory.VehicleManager.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"vehicle-manager/internal/inventory"
)

// ErrUsage wraps every argument error so callers can print usage
var ErrUsage = errors.New("usage")

const Usage = `usage: vehicle-manager [flags] <command> [args]

commands:
  list                              list all vehicles
  filter key=value...               list vehicles whose fields equal every value
  get <id>                          show one vehicle
  add key=value...                  create a vehicle (name model year color price latitude longitude)
  update <id> key=value...          change fields of an existing vehicle
  delete <id>                       delete a vehicle
  distance <id1> <id2>              distance between two vehicles in meters
  nearest <id>                      closest other vehicle
`

var requiredFields = []string{"name", "model", "year", "color", "price", "latitude", "longitude"}

// Options controls output formatting
type Options struct {
	JSON             bool
	GeohashPrecision uint
}

// CLI dispatches commands to a VehicleManager and writes results to out
type CLI struct {
	manager inventory.VehicleManager
	out     io.Writer
	opts    Options
}

func New(manager inventory.VehicleManager, out io.Writer, opts Options) *CLI {
	if opts.GeohashPrecision == 0 {
		opts.GeohashPrecision = 7
	}
	return &CLI{
		manager: manager,
		out:     out,
		opts:    opts,
	}
}

// Run executes a single command
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	command, rest := args[0], args[1:]
	slog.Debug("Running command", "command", command, "args", rest)

	switch command {
	case "list":
		if len(rest) != 0 {
			return usageError("list takes no arguments")
		}
		vehicles, err := c.manager.GetVehicles(ctx)
		if err != nil {
			return err
		}
		return c.printVehicles(vehicles)

	case "filter":
		criteria, err := parseCriteria(rest)
		if err != nil {
			return err
		}
		vehicles, err := c.manager.FilterVehicles(ctx, criteria)
		if err != nil {
			return err
		}
		return c.printVehicles(vehicles)

	case "get":
		id, err := parseIDs(rest, 1)
		if err != nil {
			return err
		}
		vehicle, err := c.manager.GetVehicle(ctx, id[0])
		if err != nil {
			return err
		}
		return c.printVehicles([]*inventory.Vehicle{vehicle})

	case "add":
		return c.add(ctx, rest)

	case "update":
		return c.update(ctx, rest)

	case "delete":
		id, err := parseIDs(rest, 1)
		if err != nil {
			return err
		}
		resp, err := c.manager.DeleteVehicle(ctx, id[0])
		if err != nil {
			return err
		}
		if c.opts.JSON {
			return c.printJSON(map[string]any{"id": id[0], "status": resp.StatusCode})
		}
		_, err = fmt.Fprintf(c.out, "delete vehicle %d: %s\n", id[0], resp.Status)
		return err

	case "distance":
		ids, err := parseIDs(rest, 2)
		if err != nil {
			return err
		}
		meters, err := c.manager.GetDistance(ctx, ids[0], ids[1])
		if err != nil {
			return err
		}
		if c.opts.JSON {
			return c.printJSON(map[string]any{"id1": ids[0], "id2": ids[1], "meters": meters})
		}
		_, err = fmt.Fprintf(c.out, "%.2f m\n", meters)
		return err

	case "nearest":
		id, err := parseIDs(rest, 1)
		if err != nil {
			return err
		}
		vehicle, err := c.manager.GetNearestVehicle(ctx, id[0])
		if err != nil {
			return err
		}
		if vehicle == nil {
			if c.opts.JSON {
				return c.printJSON(nil)
			}
			_, err = fmt.Fprintf(c.out, "no other vehicles\n")
			return err
		}
		return c.printVehicles([]*inventory.Vehicle{vehicle})

	default:
		return usageError(fmt.Sprintf("unknown command %q", command))
	}
}

func (c *CLI) add(ctx context.Context, args []string) error {
	pairs, err := parsePairs(args)
	if err != nil {
		return err
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := pairs[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return usageError("add is missing " + strings.Join(missing, ", "))
	}

	vehicle := &inventory.Vehicle{}
	for key, value := range pairs {
		if err := setField(vehicle, key, value); err != nil {
			return err
		}
	}

	created, err := c.manager.AddVehicle(ctx, vehicle)
	if err != nil {
		return err
	}
	return c.printVehicles([]*inventory.Vehicle{created})
}

func (c *CLI) update(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("update needs an id and at least one key=value")
	}

	ids, err := parseIDs(args[:1], 1)
	if err != nil {
		return err
	}
	pairs, err := parsePairs(args[1:])
	if err != nil {
		return err
	}

	vehicle, err := c.manager.GetVehicle(ctx, ids[0])
	if err != nil {
		return err
	}
	for key, value := range pairs {
		if err := setField(vehicle, key, value); err != nil {
			return err
		}
	}
	if vehicle.ID == nil {
		id := ids[0]
		vehicle.ID = &id
	}

	updated, err := c.manager.UpdateVehicle(ctx, vehicle)
	if err != nil {
		return err
	}
	return c.printVehicles([]*inventory.Vehicle{updated})
}

func (c *CLI) printVehicles(vehicles []*inventory.Vehicle) error {
	if c.opts.JSON {
		if vehicles == nil {
			vehicles = []*inventory.Vehicle{}
		}
		return c.printJSON(vehicles)
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMODEL\tYEAR\tCOLOR\tPRICE\tLATITUDE\tLONGITUDE\tGEOHASH")
	for _, v := range vehicles {
		id := "-"
		if v.ID != nil {
			id = strconv.FormatInt(*v.ID, 10)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			id, v.Name, v.Model, v.Year, v.Color,
			formatFloat(v.Price), formatFloat(v.Latitude), formatFloat(v.Longitude),
			v.Geohash(c.opts.GeohashPrecision))
	}
	return w.Flush()
}

func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usageError(msg string) error {
	return fmt.Errorf("%w: %s", ErrUsage, msg)
}

func parseIDs(args []string, n int) ([]int64, error) {
	if len(args) != n {
		return nil, usageError(fmt.Sprintf("expected %d id argument(s), got %d", n, len(args)))
	}

	ids := make([]int64, n)
	for i, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, usageError(fmt.Sprintf("invalid id %q", arg))
		}
		ids[i] = id
	}
	return ids, nil
}

func parsePairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, usageError(fmt.Sprintf("expected key=value, got %q", arg))
		}
		pairs[key] = value
	}
	return pairs, nil
}

func parseCriteria(args []string) (inventory.Criteria, error) {
	pairs, err := parsePairs(args)
	if err != nil {
		return nil, err
	}

	criteria := make(inventory.Criteria, len(pairs))
	for key, value := range pairs {
		criteria[key] = parseValue(value)
	}
	return criteria, nil
}

// parseValue guesses the JSON type of a command line value
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func setField(v *inventory.Vehicle, key, value string) error {
	var err error
	switch key {
	case "name":
		v.Name = value
	case "model":
		v.Model = value
	case "color":
		v.Color = value
	case "year":
		v.Year, err = strconv.Atoi(value)
	case "price":
		v.Price, err = strconv.ParseFloat(value, 64)
	case "latitude":
		v.Latitude, err = strconv.ParseFloat(value, 64)
	case "longitude":
		v.Longitude, err = strconv.ParseFloat(value, 64)
	default:
		return usageError(fmt.Sprintf("unknown field %q", key))
	}
	if err != nil {
		return usageError(fmt.Sprintf("invalid %s %q", key, value))
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
