/*
Package redisstore publishes the outcome of a mining run on a redis DB
so that other processes can query supported itemsets and rules
without reading the report.

Given a prefix P, a published result is made of the following keys:
  - P:transactions, the number of transactions mined
  - P:itemsets, a hash from every supported itemset to its support count
  - P:rules, a hash from every rule to its confidence
  - P:result, the JSON ResultDocument of the run
*/
package redisstore

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pbanos/apriori/pkg/apriori"
	"github.com/pbanos/apriori/pkg/bio"
	"gopkg.in/redis.v5"
)

const lockReleaseScript = `
if redis.call("GET",KEYS[1]) == ARGV[1] then
    return redis.call("DEL",KEYS[1])
else
    return 0
end
`

// DefaultLockTTL is the time a publication lock is held for at most
const DefaultLockTTL = 30 * time.Second

/*
Store publishes mining results under a key prefix on a redis DB.
*/
type Store struct {
	rc      *redis.Client
	prefix  string
	lockTTL time.Duration
}

// New builds a Store that publishes results under the given prefix
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix, DefaultLockTTL}
}

/*
Store takes a context, a mining result, the rules derived from it and
the confidence threshold applied, and publishes them replacing any
result previously published under the Store's prefix. Concurrent
publications on the same prefix are serialized with a lock.
*/
func (rs *Store) Store(ctx context.Context, result *apriori.Result, rules []apriori.Rule, confidence apriori.Threshold) error {
	release, err := rs.lock(ctx)
	if err != nil {
		return err
	}
	defer release()
	buf := &bytes.Buffer{}
	err = bio.WriteJSONResult(buf, result, rules, confidence)
	if err != nil {
		return fmt.Errorf("publishing result: %v", err)
	}
	_, err = rs.rc.Del(rs.keyFor("itemsets"), rs.keyFor("rules")).Result()
	if err != nil {
		return fmt.Errorf("clearing previous result in redis: %v", err)
	}
	itemsets := make(map[string]string)
	for _, is := range result.Supported() {
		count, _ := result.Count(is)
		itemsets[is.String()] = strconv.Itoa(count)
	}
	err = rs.hmset(rs.keyFor("itemsets"), itemsets)
	if err != nil {
		return err
	}
	ruleConfidences := make(map[string]string)
	for _, r := range rules {
		ruleConfidences[r.String()] = strconv.FormatFloat(r.Confidence, 'g', -1, 64)
	}
	err = rs.hmset(rs.keyFor("rules"), ruleConfidences)
	if err != nil {
		return err
	}
	_, err = rs.rc.Set(rs.keyFor("transactions"), result.Transactions, 0).Result()
	if err != nil {
		return fmt.Errorf("storing %q in redis: %v", rs.keyFor("transactions"), err)
	}
	_, err = rs.rc.Set(rs.keyFor("result"), buf.String(), 0).Result()
	if err != nil {
		return fmt.Errorf("storing %q in redis: %v", rs.keyFor("result"), err)
	}
	return ctx.Err()
}

/*
Get takes a context and returns the ResultDocument published under
the Store's prefix, nil if there is none, or an error.
*/
func (rs *Store) Get(ctx context.Context) (*bio.ResultDocument, error) {
	key := rs.keyFor("result")
	data, err := rs.rc.Get(key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving %q: %v", key, err)
	}
	doc, err := bio.ReadJSONResult(bytes.NewBufferString(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving %q: %v", key, err)
	}
	return doc, nil
}

/*
ItemsetCount takes a context and an itemset and returns the support
count published for it and whether it was published as supported.
*/
func (rs *Store) ItemsetCount(ctx context.Context, is apriori.Itemset) (int, bool, error) {
	key := rs.keyFor("itemsets")
	v, err := rs.rc.HGet(key, is.String()).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("retrieving %v from %q: %v", is, key, err)
	}
	count, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("retrieving %v from %q: parsing count %q: %v", is, key, v, err)
	}
	return count, true, nil
}

func (rs *Store) hmset(key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := rs.rc.HMSet(key, fields).Result()
	if err != nil {
		return fmt.Errorf("storing %q in redis: %v", key, err)
	}
	return nil
}

// lock acquires the publication lock for the prefix and returns a function to release it
func (rs *Store) lock(ctx context.Context) (func(), error) {
	key := rs.keyFor("lock")
	value := lockValue()
	for {
		ok, err := rs.rc.SetNX(key, value, rs.lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquiring lock %q: %v", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("acquiring lock %q: %v", key, ctx.Err())
		case <-time.After(100 * time.Millisecond):
		}
	}
	return func() {
		rs.rc.Eval(lockReleaseScript, []string{key}, value)
	}, nil
}

func (rs *Store) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
