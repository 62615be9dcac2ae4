package config

// DefaultConfig is read before any config file or environment variable, so
// every key that can be set has a value here.
const DefaultConfig = `# Study Smart API

server:
  # Listen address. PORT from the environment overrides the port part.
  addr: ":3000"
  # Folder with the frontend (index.html, script.js, ...). Served at /.
  static_dir: public
  allowed_origins: ["*"]
  shutdown_timeout: 10s
  read_timeout: 15s
  # Quiz generation waits on the model, keep this above llm.timeout.
  write_timeout: 90s

supabase:
  url: ""
  anon_key: ""
  # Project JWT secret. When set, /api/generate-quiz requires a signed-in user.
  jwt_secret: ""
  timeout: 15s

database:
  # Direct Postgres connection string. When set, courses and materials are read
  # with pgx instead of through the Supabase REST gateway.
  url: ""

llm:
  api_key: ""
  base_url: https://api.openai.com/v1
  model: gpt-4o-mini
  temperature: 0.7
  timeout: 60s

quiz:
  question_count: 5
  # Times the model is asked again after an unusable answer. 1 means no retry.
  max_attempts: 1

log:
  mode: dev
`
