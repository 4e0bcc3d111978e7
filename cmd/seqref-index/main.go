// Command seqref-index builds a k-mer index over one or more FASTA
// files (plus an optional link list) and answers exact-match queries
// against it, either as a one-shot lookup (-query) or interactively
// from stdin.
//
// Usage:
//
//	seqref-index -fasta a.fa,b.fa [-links links.tsv] [-k 14] [-query ACGT...]
//
// The link file format is one link per line, tab-separated:
//
//	src_name	src_ori	dst_name	dst_ori
//
// where each ori is 0 (forward) or 1 (reverse complement).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/bio-graph/seqref/fasta"
	"github.com/bio-graph/seqref/graph"
)

func main() {
	flag.Usage = usage

	fastaPaths := flag.String("fasta", "", "Comma-separated list of FASTA files to index.")
	linksPath := flag.String("links", "", "Optional tab-separated link list: src\\tsrc_ori\\tdst\\tdst_ori per line.")
	k := flag.Int("k", graph.DefaultParams().K, "K-mer length, 1..32.")
	numThreads := flag.Int("num-threads", 0, "Thread hint recorded in the index parameters; the index sort runs serially regardless. 0 means serial.")
	query := flag.String("query", "", "If set, look up this single k-mer and exit instead of reading stdin.")
	flag.Parse()

	if *fastaPaths == "" {
		log.Fatal("seqref-index: -fasta is required")
	}

	params := graph.DefaultParams()
	params.K = *k
	params.NumThreads = *numThreads

	pool, err := graph.NewPool(params)
	if err != nil {
		log.Fatalf("seqref-index: %v", err)
	}

	total := 0
	for _, path := range strings.Split(*fastaPaths, ",") {
		n, err := loadFasta(path, pool)
		if err != nil {
			log.Fatalf("seqref-index: loading %s: %v", path, err)
		}
		log.Printf("seqref-index: loaded %d sequences from %s", n, path)
		total += n
	}
	if *linksPath != "" {
		n, err := loadLinks(*linksPath, pool)
		if err != nil {
			log.Fatalf("seqref-index: loading links %s: %v", *linksPath, err)
		}
		log.Printf("seqref-index: loaded %d links from %s", n, *linksPath)
	}
	log.Printf("seqref-index: %d sequences registered", total)

	arc, err := pool.Freeze()
	if err != nil {
		log.Fatalf("seqref-index: freeze: %v", err)
	}
	idx, err := arc.BuildIndex()
	if err != nil {
		log.Fatalf("seqref-index: build index: %v", err)
	}

	if *query != "" {
		runQuery(idx, *query)
		return
	}
	repl(idx)
}

func loadFasta(path string, pool *graph.Pool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open")
	}
	defer f.Close()
	return fasta.LoadPool(f, pool)
}

// loadLinks reads tab-separated "src\tsrc_ori\tdst\tdst_ori" records and
// registers each as a link on pool.
func loadLinks(path string, pool *graph.Pool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open")
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return n, errors.Errorf("malformed link line %q: want 4 tab-separated fields", line)
		}
		srcOri, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return n, errors.Wrapf(err, "parsing src_ori in %q", line)
		}
		dstOri, err := strconv.ParseUint(fields[3], 10, 8)
		if err != nil {
			return n, errors.Wrapf(err, "parsing dst_ori in %q", line)
		}
		if err := pool.AppendLink(fields[0], uint8(srcOri), fields[2], uint8(dstOri)); err != nil {
			return n, err
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, errors.Wrap(err, "reading")
	}
	return n, nil
}

func runQuery(idx *graph.Index, word string) {
	hits, err := idx.Match([]byte(word))
	if err != nil {
		log.Fatalf("seqref-index: query %q: %v", word, err)
	}
	printHits(word, hits)
}

func repl(idx *graph.Index) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		hits, err := idx.Match([]byte(word))
		if err != nil {
			fmt.Fprintf(os.Stderr, "seqref-index: %v\n", err)
			continue
		}
		printHits(word, hits)
	}
}

func printHits(word string, hits []graph.Position) {
	for _, h := range hits {
		fmt.Printf("%s\t%d\t%d\t%d\n", word, h.GID.SectionID(), h.GID.Dir(), h.Pos)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: seqref-index -fasta a.fa,b.fa [-links links.tsv] [-k 14] [-query ACGT...]\n")
	flag.PrintDefaults()
}
