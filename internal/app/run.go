package app

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math"

	"go.lepovirta.org/shopkit/internal/coupon"
	"go.lepovirta.org/shopkit/internal/file"
	"go.lepovirta.org/shopkit/internal/match"
	"go.lepovirta.org/shopkit/internal/shop"
	"go.lepovirta.org/shopkit/internal/validate"
)

func (this *Core) commandFlagSet(name string) *flag.FlagSet {
	flagSet := flag.NewFlagSet(
		fmt.Sprintf("%s %s", AppName, name),
		flag.ContinueOnError,
	)
	flagSet.SetOutput(this.osEnv.Stderr)
	return flagSet
}

func (this *Core) runCoupons() error {
	flagSet := this.commandFlagSet("coupons")
	pattern := flagSet.String(
		"match", "",
		"Only list coupon codes matching the given pattern. "+
			"Wrap the pattern in slashes to match with a regular expression.",
	)
	if err := flagSet.Parse(this.cliFlags.CommandArgs); err != nil {
		return err
	}

	matcher, err := match.FromString(*pattern)
	if err != nil {
		return fmt.Errorf("invalid match pattern '%s': %w", *pattern, err)
	}

	for _, c := range this.cfg.Coupons {
		if !matcher.MatchString(c.Code) {
			continue
		}
		_, err := fmt.Fprintf(
			this.osEnv.Stdout,
			"%s\t%.0f%%\n",
			c.Code, c.Discount*100,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (this *Core) runDiscount() error {
	flagSet := this.commandFlagSet("discount")
	price := flagSet.Float64("price", math.NaN(), "Price to discount.")
	code := flagSet.String("code", "", "Coupon code to apply.")
	requestPath := flagSet.String(
		"request", "",
		"Path to a JSON discount request. Use '-' to read from STDIN. "+
			"Overrides the -price and -code flags.",
	)
	if err := flagSet.Parse(this.cliFlags.CommandArgs); err != nil {
		return err
	}

	req := coupon.DiscountRequest{Price: *price, Code: *code}
	if *requestPath != "" {
		if err := this.readDiscountRequest(*requestPath, &req); err != nil {
			return err
		}
	}

	discounted, err := this.cfg.Coupons.Apply(req.Price, req.Code)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(this.osEnv.Stdout, "%.2f\n", discounted)
	return err
}

func (this *Core) readDiscountRequest(
	path string,
	req *coupon.DiscountRequest,
) error {
	if path == StdinPath {
		return json.NewDecoder(this.osEnv.Stdin).Decode(req)
	}

	var fileReader file.Reader
	fileReader.Init(this.osEnv.Fs, 1)

	requestFile, err := fileReader.Open(path)
	if err != nil {
		_ = fileReader.Close()
		return fmt.Errorf(
			"failed to open request in path '%s': %w",
			path, err,
		)
	}

	if err := json.NewDecoder(bufio.NewReader(requestFile)).Decode(req); err != nil {
		_ = fileReader.Close()
		return err
	}
	return fileReader.Close()
}

func (this *Core) runValidate() error {
	flagSet := this.commandFlagSet("validate")
	username := flagSet.String("username", "", "Username to validate.")
	age := flagSet.Int("age", 0, "Age to validate.")
	if err := flagSet.Parse(this.cliFlags.CommandArgs); err != nil {
		return err
	}

	msg, err := validate.UserInput(*username, *age)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(this.osEnv.Stdout, msg)
	return err
}

func (this *Core) runUsername() error {
	flagSet := this.commandFlagSet("username")
	name := flagSet.String("name", "", "Display name to check.")
	if err := flagSet.Parse(this.cliFlags.CommandArgs); err != nil {
		return err
	}

	verdict := "valid"
	if !validate.Username(*name) {
		verdict = "not valid"
	}
	_, err := fmt.Fprintf(
		this.osEnv.Stdout,
		"username '%s' is %s\n",
		*name, verdict,
	)
	return err
}

func (this *Core) runCanDrive() error {
	flagSet := this.commandFlagSet("candrive")
	age := flagSet.Int("age", 0, "Age of the driver.")
	country := flagSet.String("country", "", "Country code, e.g. US.")
	if err := flagSet.Parse(this.cliFlags.CommandArgs); err != nil {
		return err
	}

	eligible, err := this.cfg.DrivingAges.CanDrive(*age, *country)
	if err != nil {
		return fmt.Errorf("%w: %s", err, *country)
	}

	verdict := "allowed to drive"
	if !eligible {
		verdict = "not allowed to drive"
	}
	_, err = fmt.Fprintf(
		this.osEnv.Stdout,
		"age %d in %s: %s\n",
		*age, *country, verdict,
	)
	return err
}

func (this *Core) runStatus() error {
	flagSet := this.commandFlagSet("status")
	if err := flagSet.Parse(this.cliFlags.CommandArgs); err != nil {
		return err
	}

	var service shop.Service
	service.Init(shop.Deps{
		Clock:   shop.SystemClock(),
		Opening: this.cfg.OpeningHours(),
	})

	status := "online"
	if !service.IsOnline() {
		status = "offline"
	}
	if _, err := fmt.Fprintf(
		this.osEnv.Stdout,
		"store is %s\n", status,
	); err != nil {
		return err
	}

	_, err := fmt.Fprintf(
		this.osEnv.Stdout,
		"seasonal discount: %.0f%%\n",
		service.Discount()*100,
	)
	return err
}
