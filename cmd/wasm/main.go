//go:build js && wasm

package main

import (
	"crypto/sha256"
	"encoding/hex"
	"syscall/js"

	"paraqa/internal/adapter/chunker"
	"paraqa/internal/adapter/registry"
	"paraqa/internal/adapter/retriever"
)

// Browser surface: one process-lifetime registry, ranking only. Answer
// synthesis stays host-side where the credential lives.
var (
	reg     *registry.MemoryRegistry
	lexical *retriever.LexicalRetriever
)

func init() {
	reg = registry.NewMemoryRegistry(chunker.NewParagraphChunker())
	lexical = retriever.NewLexicalRetriever(reg)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("paraqaUpload", js.FuncOf(uploadDocument))
	js.Global().Set("paraqaSearch", js.FuncOf(searchStores))
	js.Global().Set("paraqaStores", js.FuncOf(listStores))
	js.Global().Set("paraqaRemove", js.FuncOf(removeStore))
	js.Global().Set("paraqaClear", js.FuncOf(clearStores))

	<-c
}

func uploadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: paraqaUpload(filename, content)")
	}

	filename := args[0].String()
	content := args[1].String()

	store := reg.Put(storeID(filename), filename, content)

	return makeResult(map[string]interface{}{
		"success": true,
		"id":      store.ID,
		"name":    store.Name,
		"chunks":  len(store.Chunks),
	})
}

func searchStores(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: paraqaSearch(query, [storeIds], [topK])")
	}

	query := args[0].String()

	var storeIDs []string
	if len(args) > 1 && args[1].Type() == js.TypeObject {
		for i := 0; i < args[1].Length(); i++ {
			storeIDs = append(storeIDs, args[1].Index(i).String())
		}
	} else {
		for _, store := range reg.List() {
			storeIDs = append(storeIDs, store.ID)
		}
	}

	topK := 10
	if len(args) > 2 {
		topK = args[2].Int()
	}

	results := lexical.Search(query, storeIDs, topK)

	out := make([]interface{}, len(results))
	for i, r := range results {
		out[i] = map[string]interface{}{
			"source":    r.Chunk.Source,
			"paragraph": r.Chunk.Position,
			"score":     r.Score,
			"content":   r.Chunk.Content,
		}
	}

	return makeResult(map[string]interface{}{
		"success": true,
		"results": out,
	})
}

func listStores(this js.Value, args []js.Value) interface{} {
	stores := reg.List()
	out := make([]interface{}, len(stores))
	for i, store := range stores {
		out[i] = map[string]interface{}{
			"id":     store.ID,
			"name":   store.Name,
			"chunks": len(store.Chunks),
		}
	}
	return makeResult(map[string]interface{}{
		"success": true,
		"stores":  out,
	})
}

func removeStore(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: paraqaRemove(storeId)")
	}
	reg.Remove(args[0].String())
	return makeResult(map[string]interface{}{"success": true})
}

func clearStores(this js.Value, args []js.Value) interface{} {
	reg.Clear()
	return makeResult(map[string]interface{}{"success": true})
}

func storeID(filename string) string {
	hash := sha256.Sum256([]byte(filename))
	return hex.EncodeToString(hash[:8])
}

func makeResult(data map[string]interface{}) js.Value {
	return js.ValueOf(data)
}

func makeError(msg string) js.Value {
	return js.ValueOf(map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}
