package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EncodeRequest asks for a seed to be encoded into words. Wordlist optionally
// names a registered list; empty means the server default.
type EncodeRequest struct {
	Seed     string `json:"seed"`
	Wordlist string `json:"wordlist,omitempty"`
}

// EncodeResponse carries the encoded word sequence
type EncodeResponse struct {
	Words     []string `json:"words"`
	ChunkSize int      `json:"chunk_size"`
}

// DecodeRequest asks for a word sequence to be decoded back to its seed
type DecodeRequest struct {
	Words    []string `json:"words"`
	Wordlist string   `json:"wordlist,omitempty"`
}

// DecodeResponse carries the recovered seed
type DecodeResponse struct {
	Seed      string `json:"seed"`
	ChunkSize int    `json:"chunk_size"`
}

// WordlistRequest registers a named wordlist
type WordlistRequest struct {
	Words []string `json:"words"`
}

// WordlistResponse describes a registered wordlist
type WordlistResponse struct {
	Name      string   `json:"name"`
	Size      int      `json:"size"`
	ChunkSize int      `json:"chunk_size"`
	Words     []string `json:"words,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string // empty disables authentication
}
