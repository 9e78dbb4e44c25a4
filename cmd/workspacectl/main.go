// Package main 是工作台命令行客户端的入口点
package main

func main() {
	Execute()
}
