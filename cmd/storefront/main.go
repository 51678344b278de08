// Command storefront runs the demo shop with a line-based prompt: the
// thin presentation layer binding user actions to the cart service and
// re-rendering the derived views after each one.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/majikbloom/storefront"
	"github.com/majikbloom/storefront/cart"
	"github.com/majikbloom/storefront/catalog"
	"github.com/majikbloom/storefront/config"
	"github.com/majikbloom/storefront/contact"
	"github.com/majikbloom/storefront/driver"
	"github.com/majikbloom/storefront/event"
	"github.com/majikbloom/storefront/notify"
	"github.com/majikbloom/storefront/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	redisClient, err := driver.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close()

	natsConn, err := driver.ConnectNATS(cfg.NATSURL)
	if err != nil {
		return fmt.Errorf("connect nats: %w", err)
	}
	defer natsConn.Close()

	ctx := context.Background()
	kv := storage.NewRedisStore(redisClient, logger)
	catalogRepo := catalog.NewStaticRepository(catalog.DefaultProducts(), logger)
	cartStore := cart.NewStore(catalogRepo, kv, cfg.CartStorageKey, cfg.TaxRate, logger)
	events := event.NewRepository(kv, logger)
	notifier := notify.NewCenter(cfg.NotifyTTL, cfg.NotifyFade, logger)

	svc := storefront.NewService(ctx, catalogRepo, cartStore, events, notifier, natsConn, logger)
	defer svc.Close()

	fmt.Println("majik bloom storefront")
	fmt.Println("commands: products, add <id>, inc <id>, dec <id>, set <id> <qty>, remove <id>, cart, checkout, contact <name> <email> <message...>, quit")

	seen := make(map[string]bool)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "products":
			products, err := svc.ListProducts(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, p := range products {
				fmt.Printf("  %d  %-20s %s\n", p.ID, p.Name, cart.FormatUSD(p.Price))
			}

		case "add", "inc", "dec", "remove":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			switch fields[0] {
			case "add":
				err = svc.AddItemToCart(ctx, id)
			case "inc":
				err = svc.IncrementItemQuantity(ctx, id)
			case "dec":
				err = svc.DecrementItemQuantity(ctx, id)
			case "remove":
				err = svc.RemoveItemFromCart(ctx, id)
			}
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			renderCart(svc)
			flushNotifications(svc, seen)

		case "set":
			if len(fields) != 3 {
				fmt.Println("usage: set <id> <qty>")
				continue
			}
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			qty, err := strconv.Atoi(fields[2])
			if err != nil || qty < 1 {
				fmt.Println("quantity must be a positive number")
				continue
			}
			if err := svc.SetItemQuantity(ctx, id, qty); err != nil {
				fmt.Println("error:", err)
				continue
			}
			renderCart(svc)

		case "cart":
			renderCart(svc)

		case "checkout":
			if err := svc.Checkout(ctx); errors.Is(err, storefront.ErrEmptyCart) {
				fmt.Println("Your cart is empty!")
			} else if err != nil {
				fmt.Println("error:", err)
			} else {
				flushNotifications(svc, seen)
			}

		case "contact":
			if len(fields) < 4 {
				fmt.Println("usage: contact <name> <email> <message...>")
				continue
			}
			msg := contact.Message{Name: fields[1], Email: fields[2], Body: strings.Join(fields[3:], " ")}
			if err := svc.SubmitContactMessage(ctx, msg); err != nil {
				fmt.Println("error:", err)
			} else {
				flushNotifications(svc, seen)
			}

		case "quit", "exit":
			return nil

		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

// flushNotifications gives the event pipeline a beat to deliver, then
// prints anything new on screen. The 3s auto-dismiss still applies;
// this only echoes each message once.
func flushNotifications(svc storefront.Service, seen map[string]bool) {
	time.Sleep(150 * time.Millisecond)
	for _, n := range svc.Notifications() {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		fmt.Println("  *", n.Message)
	}
}

func parseID(fields []string) (int, bool) {
	if len(fields) < 2 {
		fmt.Println("usage:", fields[0], "<id>")
		return 0, false
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Println("product id must be a number")
		return 0, false
	}
	return id, true
}

func renderCart(svc storefront.Service) {
	items := svc.CartItems()
	if len(items) == 0 {
		fmt.Println("  cart is empty")
		return
	}
	for _, item := range items {
		fmt.Printf("  %d  %-20s %s x%d = %s\n",
			item.ID, item.Name, cart.FormatUSD(item.Price), item.Quantity, cart.FormatUSD(item.LineTotal()))
	}
	totals := svc.CartTotals()
	fmt.Printf("  items: %d  subtotal: %s  tax: %s  total: %s\n",
		svc.CartItemCount(), cart.FormatUSD(totals.Subtotal), cart.FormatUSD(totals.Tax), cart.FormatUSD(totals.Total))
}
