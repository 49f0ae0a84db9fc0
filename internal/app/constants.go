package app

// MinHumansToStartGame is the number of human seats required before bots may fill the rest.
const MinHumansToStartGame = 1
