// Package gpt2bpe provides a GPT-2 family byte-pair encoding tokenizer.
package gpt2bpe

// Generate documentation for the root package
//go:generate gomarkdoc -o README.md -e . --embed --repository.url https://github.com/corpusml/gpt2bpe --repository.default-branch main --repository.path /

// Generate documentation for the tokenizer package
//go:generate gomarkdoc -o ./gpt2bpe/README.md -e ./gpt2bpe --embed --repository.url https://github.com/corpusml/gpt2bpe --repository.default-branch main --repository.path /gpt2bpe

// Generate documentation for the trainer package
//go:generate gomarkdoc -o ./train/README.md -e ./train --embed --repository.url https://github.com/corpusml/gpt2bpe --repository.default-branch main --repository.path /train

// Generate documentation for the CLI package
//go:generate gomarkdoc -o ./cmd/gpt2bpe/README.md -e ./cmd/gpt2bpe --embed --repository.url https://github.com/corpusml/gpt2bpe --repository.default-branch main --repository.path /cmd/gpt2bpe
