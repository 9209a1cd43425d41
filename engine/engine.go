package engine

import (
	"sort"
	"strconv"
	"strings"

	"credential-assistant/knowledge"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

const responseCacheSize = 256

// Reply source labels, recorded on persisted messages and audit entries.
const (
	SourceMatch      = "match"
	SourceFallback   = "fallback"
	SourceDeflection = "deflection"
	SourceEmpty      = "empty"
)

// Reply is the engine's answer to a single utterance.
type Reply struct {
	Text   string
	Topic  string
	Source string
	Score  float64
}

// Engine is the intent-matching pipeline: tokenize, blend context, score
// against the knowledge base, fall back to substring rules, deflect as a last
// resort. It is a total function over strings and never errors. Safe for
// concurrent use; the knowledge base is read-only and the cache locks
// internally.
type Engine struct {
	base   *knowledge.Base
	cache  *lru.Cache
	logger *zap.Logger
}

func New(base *knowledge.Base, logger *zap.Logger) *Engine {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New(responseCacheSize)
	return &Engine{
		base:   base,
		cache:  cache,
		logger: logger,
	}
}

// Base exposes the engine's knowledge base for read-only consumers.
func (e *Engine) Base() *knowledge.Base {
	return e.base
}

// Respond selects the best answer for an utterance given the trailing user
// history (most recent last, excluding the utterance itself). The pipeline is
// pure and deterministic, which makes replies cacheable by input.
func (e *Engine) Respond(utterance string, history []string) Reply {
	if strings.TrimSpace(utterance) == "" {
		return Reply{Text: EmptyInputMessage, Source: SourceEmpty}
	}

	key := cacheKey(utterance, history)
	if cached, ok := e.cache.Get(key); ok {
		return cached.(Reply)
	}

	reply := e.respond(utterance, history)
	e.cache.Add(key, reply)
	return reply
}

func (e *Engine) respond(utterance string, history []string) Reply {
	query := Aggregate(utterance, history)

	if entry, score, ok := SelectBest(query, e.base); ok {
		e.logger.Debug("Knowledge base match",
			zap.String("question", entry.Question),
			zap.Float64("score", score),
			zap.Strings("query_keywords", sortedKeys(query)))
		return Reply{Text: entry.Answer, Topic: entry.Topic, Source: SourceMatch, Score: score}
	}

	if entry, ok := resolveFallback(utterance, e.base); ok {
		e.logger.Debug("Fallback rule match", zap.String("question", entry.Question))
		return Reply{Text: entry.Answer, Topic: entry.Topic, Source: SourceFallback}
	}

	return Reply{Text: DeflectionMessage, Source: SourceDeflection}
}

// cacheKey encodes the inputs unambiguously: each segment carries its own
// length prefix, so no utterance content can masquerade as a segment boundary.
func cacheKey(utterance string, history []string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(utterance)))
	b.WriteByte(':')
	b.WriteString(utterance)
	for _, h := range history {
		b.WriteString(strconv.Itoa(len(h)))
		b.WriteByte(':')
		b.WriteString(h)
	}
	return b.String()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
