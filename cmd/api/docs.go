package main

// @title           Inventory Backend API
// @version         1.0
// @description     Multi-branch retail inventory API: purchase and sale order lifecycles, stock opname and an append-only stock ledger

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT authentication header using the Bearer scheme. Example: "Bearer {token}"
