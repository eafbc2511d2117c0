package types

type contextKey string

// ClientAppKey — ключ контекста, под которым root команда кладет *client.App
const ClientAppKey contextKey = "clientApp"
