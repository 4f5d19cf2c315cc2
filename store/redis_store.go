package store

import (
	"fmt"
	"math/rand"
	"strconv"

	redis "github.com/go-redis/redis/v7"

	"github.com/paidy/tableorders/api"
	"github.com/paidy/tableorders/apierr"
)

// RedisStore is a Store backed by Redis: one hash per item, one list per
// table holding that table's item ids in insertion order, and one
// INCR-driven counter supplying the id sequence -- the same shape as the
// in-memory store's (table, item) rows, just split across Redis's data
// types instead of a Go slice.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by the Redis instance reachable at
// addr (host:port).
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func orderKey(tableNumber uint32) string {
	return fmt.Sprintf("tableorders:order:%d", tableNumber)
}

func itemKey(tableNumber, itemID uint32) string {
	return fmt.Sprintf("tableorders:item:%d:%d", tableNumber, itemID)
}

func (s *RedisStore) GetOrder(tableNumber uint32) (api.Order, error) {
	ids, err := s.client.LRange(orderKey(tableNumber), 0, -1).Result()
	if err != nil {
		return api.Order{}, &apierr.InternalServerError{Reason: err.Error()}
	}
	if len(ids) == 0 {
		return api.Order{}, &apierr.NotFound{Reason: "no orders for table"}
	}

	items := make([]api.Item, 0, len(ids))
	for _, idStr := range ids {
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			return api.Order{}, &apierr.InternalServerError{Reason: err.Error()}
		}
		item, err := s.readItem(tableNumber, uint32(id))
		if err != nil {
			continue // item was deleted after the list entry was read
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return api.Order{}, &apierr.NotFound{Reason: "no orders for table"}
	}
	return api.Order{TableNumber: tableNumber, Items: items}, nil
}

func (s *RedisStore) GetOrderItem(tableNumber, itemID uint32) (api.Item, error) {
	return s.readItem(tableNumber, itemID)
}

func (s *RedisStore) readItem(tableNumber, itemID uint32) (api.Item, error) {
	fields, err := s.client.HGetAll(itemKey(tableNumber, itemID)).Result()
	if err != nil {
		return api.Item{}, &apierr.InternalServerError{Reason: err.Error()}
	}
	if len(fields) == 0 {
		return api.Item{}, &apierr.NotFound{Reason: "no such item for table"}
	}

	ttc, err := strconv.ParseUint(fields["time_to_completion"], 10, 32)
	if err != nil {
		return api.Item{}, &apierr.InternalServerError{Reason: err.Error()}
	}
	return api.Item{
		Name:             fields["name"],
		TimeToCompletion: uint32(ttc),
		ID:               itemID,
	}, nil
}

func (s *RedisStore) InsertOrders(tableNumber uint32, names []string) ([]api.Item, error) {
	items := make([]api.Item, 0, len(names))
	for _, name := range names {
		id, err := s.client.Incr("tableorders:seq").Result()
		if err != nil {
			return nil, &apierr.InternalServerError{Reason: err.Error()}
		}
		item := api.Item{
			Name:             name,
			TimeToCompletion: uint32(5 + rand.Intn(10)),
			ID:               uint32(id),
		}
		if err := s.client.HSet(itemKey(tableNumber, item.ID), map[string]interface{}{
			"name":               item.Name,
			"time_to_completion": item.TimeToCompletion,
		}).Err(); err != nil {
			return nil, &apierr.InternalServerError{Reason: err.Error()}
		}
		if err := s.client.RPush(orderKey(tableNumber), item.ID).Err(); err != nil {
			return nil, &apierr.InternalServerError{Reason: err.Error()}
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *RedisStore) DeleteItem(tableNumber, itemID uint32) (api.Item, error) {
	item, err := s.readItem(tableNumber, itemID)
	if err != nil {
		return api.Item{}, err
	}
	if err := s.client.Del(itemKey(tableNumber, itemID)).Err(); err != nil {
		return api.Item{}, &apierr.InternalServerError{Reason: err.Error()}
	}
	if err := s.client.LRem(orderKey(tableNumber), 0, itemID).Err(); err != nil {
		return api.Item{}, &apierr.InternalServerError{Reason: err.Error()}
	}
	return item, nil
}
