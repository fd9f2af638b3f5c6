// Ranking benchmark over a synthetic paragraph corpus.
//
// Usage:
//
//	go run cmd/benchmark/main.go -stores 20 -paragraphs 500 -q "lexical overlap"
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"paraqa/internal/adapter/chunker"
	"paraqa/internal/adapter/registry"
	"paraqa/internal/adapter/retriever"
)

var vocabulary = strings.Fields(`consciência projeção fenômeno estudo
energia corpo mental evolução paradigma cosmos vida pensamento
registro experiência bioenergia lucidez autoconsciência dimensão
retrieval paragraph chunk store query lexical overlap score match
token document source position answer context`)

func main() {
	storeCount := flag.Int("stores", 20, "number of stores")
	paragraphCount := flag.Int("paragraphs", 500, "paragraphs per store")
	query := flag.String("q", "consciência lexical score", "query to rank")
	topK := flag.Int("k", 10, "number of results")
	flag.Parse()

	if *storeCount <= 0 || *paragraphCount <= 0 {
		fmt.Fprintln(os.Stderr, "stores and paragraphs must be positive")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(42))
	reg := registry.NewMemoryRegistry(chunker.NewParagraphChunker())

	fmt.Println("LEXICAL RANKING BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))

	start := time.Now()
	storeIDs := make([]string, 0, *storeCount)
	totalChunks := 0
	for i := 0; i < *storeCount; i++ {
		id := fmt.Sprintf("store-%03d", i)
		store := reg.Put(id, fmt.Sprintf("doc-%03d.txt", i), syntheticDocument(rng, *paragraphCount))
		storeIDs = append(storeIDs, id)
		totalChunks += len(store.Chunks)
	}
	ingestTime := time.Since(start)

	fmt.Printf("Stores: %d, chunks: %d\n", *storeCount, totalChunks)
	fmt.Printf("Chunk + index time: %s (%.0f chunks/s)\n\n",
		ingestTime, float64(totalChunks)/ingestTime.Seconds())

	lexical := retriever.NewLexicalRetriever(reg)

	const rounds = 50
	start = time.Now()
	var results int
	for i := 0; i < rounds; i++ {
		results = len(lexical.Search(*query, storeIDs, *topK))
	}
	searchTime := time.Since(start)

	fmt.Printf("Query: %q\n", *query)
	fmt.Printf("Results: %d (top-k %d)\n", results, *topK)
	fmt.Printf("Search time: %s/query over %d queries (%.0f chunks/s scored)\n",
		searchTime/rounds, rounds, float64(totalChunks*rounds)/searchTime.Seconds())
}

func syntheticDocument(rng *rand.Rand, paragraphs int) string {
	var b strings.Builder
	for p := 0; p < paragraphs; p++ {
		words := 8 + rng.Intn(20)
		for w := 0; w < words; w++ {
			if w > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(vocabulary[rng.Intn(len(vocabulary))])
		}
		b.WriteString(".\n\n")
	}
	return b.String()
}
